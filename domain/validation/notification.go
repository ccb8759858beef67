package validation

import "strings"

// Error ข้อผิดพลาด 1 รายการจากการ validate
type Error struct {
	Message string `json:"message"`
}

// Notification สะสม validation errors ทั้งหมดก่อนตัดสินใจ reject
// ไม่ fail ทันทีที่เจอ error แรก เพื่อให้ caller เห็นทุกปัญหาในรอบเดียว
type Notification struct {
	errors []Error
}

func NewNotification() *Notification {
	return &Notification{}
}

// Append เพิ่ม error เข้า notification
func (n *Notification) Append(message string) *Notification {
	n.errors = append(n.errors, Error{Message: message})
	return n
}

// Merge รวม errors จาก notification อื่น
func (n *Notification) Merge(other *Notification) *Notification {
	if other != nil {
		n.errors = append(n.errors, other.errors...)
	}
	return n
}

// HasErrors ตรวจสอบว่ามี error สะสมอยู่หรือไม่
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// Errors คืนรายการ errors ทั้งหมด
func (n *Notification) Errors() []Error {
	return n.errors
}

// Messages คืนเฉพาะข้อความ error
func (n *Notification) Messages() []string {
	msgs := make([]string, 0, len(n.errors))
	for _, e := range n.errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Error implements error
func (n *Notification) Error() string {
	return strings.Join(n.Messages(), "; ")
}
