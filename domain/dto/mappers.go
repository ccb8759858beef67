package dto

import (
	"catalog-admin/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func ImageMediaToResponse(media *models.ImageMedia) *ImageMediaResponse {
	if media == nil {
		return nil
	}
	return &ImageMediaResponse{
		ID:       media.ID,
		Checksum: media.Checksum,
		Name:     media.Name,
		Location: media.Location,
	}
}

func AudioVideoMediaToResponse(media *models.AudioVideoMedia) *AudioVideoMediaResponse {
	if media == nil {
		return nil
	}
	return &AudioVideoMediaResponse{
		ID:              media.ID,
		Checksum:        media.Checksum,
		Name:            media.Name,
		RawLocation:     media.RawLocation,
		EncodedLocation: media.EncodedLocation,
		Status:          media.Status,
	}
}

func VideoToVideoResponse(video *models.Video) *VideoResponse {
	if video == nil {
		return nil
	}
	return &VideoResponse{
		ID:            video.ID,
		Title:         video.Title,
		Description:   video.Description,
		LaunchYear:    video.LaunchYear,
		Duration:      video.Duration,
		Opened:        video.Opened,
		Published:     video.Published,
		Rating:        video.Rating,
		Banner:        ImageMediaToResponse(video.Banner),
		Thumbnail:     ImageMediaToResponse(video.Thumbnail),
		ThumbnailHalf: ImageMediaToResponse(video.ThumbnailHalf),
		Trailer:       AudioVideoMediaToResponse(video.Trailer),
		Video:         AudioVideoMediaToResponse(video.VideoFile),
		CategoryIDs:   video.CategoryIDs,
		GenreIDs:      video.GenreIDs,
		CastMemberIDs: video.CastMemberIDs,
		CreatedAt:     video.CreatedAt,
		UpdatedAt:     video.UpdatedAt,
	}
}

func VideoToListItemResponse(video *models.Video) VideoListItemResponse {
	return VideoListItemResponse{
		ID:          video.ID,
		Title:       video.Title,
		Description: video.Description,
		LaunchYear:  video.LaunchYear,
		Rating:      video.Rating,
		CreatedAt:   video.CreatedAt,
	}
}

func CategoryToResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func GenreToResponse(genre *models.Genre) *GenreResponse {
	if genre == nil {
		return nil
	}
	return &GenreResponse{
		ID:          genre.ID,
		Name:        genre.Name,
		Slug:        genre.Slug,
		IsActive:    genre.IsActive,
		CategoryIDs: genre.CategoryIDs,
		CreatedAt:   genre.CreatedAt,
		UpdatedAt:   genre.UpdatedAt,
	}
}

func CastMemberToResponse(member *models.CastMember) *CastMemberResponse {
	if member == nil {
		return nil
	}
	return &CastMemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Type:      string(member.Type),
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
