package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"catalog-admin/pkg/logger"
)

// Client wraps NATS connection with JetStream context
type Client struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	stream jetstream.Stream // Media events stream
}

// ClientConfig configuration สำหรับ NATS Client
type ClientConfig struct {
	URL string // nats://localhost:4222
}

// NewClient สร้าง NATS Client พร้อม JetStream
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1), // Reconnect forever
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{
		conn: nc,
		js:   js,
	}

	if err := client.setupStream(context.Background()); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to setup stream: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL, "stream", StreamName)
	return client, nil
}

// setupStream สร้างหรืออัปเดต media events stream
func (c *Client) setupStream(ctx context.Context) error {
	cfg := jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{"media.>"},
		Storage:     jetstream.FileStorage,    // Persistent storage
		Retention:   jetstream.LimitsPolicy,   // encoder หลายตัว consume ได้
		MaxAge:      7 * 24 * time.Hour,       // เก็บ events ไม่เกิน 7 วัน
		Replicas:    1,
		Description: "Media domain events",
	}

	stream, err := c.js.CreateOrUpdateStream(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create/update media events stream: %w", err)
	}
	c.stream = stream
	logger.Info("JetStream stream ready", "name", StreamName)

	return nil
}

// Conn returns the underlying NATS connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// Stream returns the configured stream
func (c *Client) Stream() jetstream.Stream {
	return c.stream
}

// GetStatus ดึงสถานะของ JetStream stream (สำหรับ Monitoring API)
func (c *Client) GetStatus(ctx context.Context) (*JetStreamStatus, error) {
	streamInfo, err := c.stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream info: %w", err)
	}

	return &JetStreamStatus{
		Stream: StreamInfo{
			Name:     streamInfo.Config.Name,
			Messages: streamInfo.State.Msgs,
			Bytes:    streamInfo.State.Bytes,
			FirstSeq: streamInfo.State.FirstSeq,
			LastSeq:  streamInfo.State.LastSeq,
		},
	}, nil
}

// Close ปิด NATS connection
func (c *Client) Close() error {
	if c.conn != nil {
		c.conn.Close()
		logger.Info("NATS connection closed")
	}
	return nil
}

// Ping ทดสอบ connection
func (c *Client) Ping() error {
	return c.conn.FlushTimeout(5 * time.Second)
}

// IsConnected ตรวจสอบว่าเชื่อมต่ออยู่หรือไม่
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}
