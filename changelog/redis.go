// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changelog

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/gradebook/roster"
)

const redisTimeout = 2 * time.Second

// RedisSink appends change records to a Redis stream.
type RedisSink struct {
	client *redis.Client
	stream string
}

// NewRedisSink connects to url (redis://...) and pings the server.
func NewRedisSink(url, stream string) (*RedisSink, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSink{client: client, stream: stream}, nil
}

func (s *RedisSink) Record(rec roster.ChangeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: streamValues(rec),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append to stream %s: %w", s.stream, err)
	}
	return nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}

func streamValues(rec roster.ChangeRecord) map[string]interface{} {
	return map[string]interface{}{
		"timestamp":    rec.Timestamp.UTC().Format(time.RFC3339Nano),
		"student_id":   rec.StudentID,
		"student_name": rec.StudentName,
		"action":       string(rec.Action),
		"subject":      rec.Subject,
		"score":        roster.FormatScore(rec.Score),
	}
}
