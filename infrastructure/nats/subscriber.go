package nats

import (
	"encoding/json"
	"sync"

	"github.com/nats-io/nats.go"

	"catalog-admin/pkg/logger"
)

// ResultHandler callback function เมื่อได้รับผลจาก encoder
type ResultHandler func(result *EncoderResultMessage)

// Subscriber NATS Pub/Sub subscriber สำหรับ encoder results
type Subscriber struct {
	conn       *nats.Conn
	sub        *nats.Subscription
	handlers   []ResultHandler
	handlersMu sync.RWMutex
	running    bool
	runningMu  sync.Mutex
}

// NewSubscriber สร้าง NATS Subscriber ใหม่
func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{
		conn:     conn,
		handlers: make([]ResultHandler, 0),
	}
}

// OnResult ลงทะเบียน handler สำหรับ encoder results
func (s *Subscriber) OnResult(handler ResultHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Start เริ่ม subscribe และรับข้อมูล
func (s *Subscriber) Start() error {
	s.runningMu.Lock()
	if s.running {
		s.runningMu.Unlock()
		return nil
	}
	s.running = true
	s.runningMu.Unlock()

	sub, err := s.conn.Subscribe(SubjectEncoderResults, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub

	logger.Info("NATS subscriber started", "subject", SubjectEncoderResults)
	return nil
}

// handleMessage จัดการ message ที่ได้รับ
func (s *Subscriber) handleMessage(msg *nats.Msg) {
	var result EncoderResultMessage
	if err := json.Unmarshal(msg.Data, &result); err != nil {
		logger.Error("Failed to parse encoder result", "error", err)
		return
	}

	s.handlersMu.RLock()
	handlers := s.handlers
	s.handlersMu.RUnlock()

	for _, handler := range handlers {
		// Run synchronously to maintain message order
		func(h ResultHandler, r EncoderResultMessage) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Encoder result handler panicked", "error", rec)
				}
			}()
			h(&r)
		}(handler, result)
	}

	logger.Info("Encoder result received from NATS",
		"video_id", result.ID,
		"status", result.Status,
		"handlers_count", len(handlers),
	)
}

// Stop หยุด subscriber
func (s *Subscriber) Stop() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return nil
	}

	s.running = false

	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", "error", err)
		}
	}

	logger.Info("NATS subscriber stopped")
	return nil
}

// IsRunning ตรวจสอบว่า subscriber กำลังทำงานอยู่หรือไม่
func (s *Subscriber) IsRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
