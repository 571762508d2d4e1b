package redis

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionTTL = 24 * time.Hour

// 세션 등록
func (r *RedisClient) RegisterSession(sessionID string, memberID int) error {
	err := r.Client.Set(ctx, sessionID, strconv.Itoa(memberID), sessionTTL).Err()
	if err != nil {
		log.Printf("Failed to register session %s: %v", sessionID, err)
		return err
	}
	return nil
}

// 세션 ID로 사용자 ID 조회
func (r *RedisClient) GetUserBySessionID(sessionID string) (int, error) {
	sUserID, err := r.Client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		log.Printf("sessionID is not exist in DB")
		return 0, fmt.Errorf("session not found")
	} else if err != nil {
		log.Printf("Get Session Error, %s", err.Error())
		return 0, err
	}

	userID, err := strconv.Atoi(sUserID)
	if err != nil {
		log.Printf("Failed to Atoi, user id: %s", sUserID)
		return 0, err
	}

	return userID, nil
}

// 세션 삭제
func (r *RedisClient) DeleteSession(sessionID string) error {
	return r.Delete(sessionID)
}
