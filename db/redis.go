// api/db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// Task payloads may carry customer data, so they are encrypted at rest in
// the cache.
func CacheTask(ctx context.Context, task *model.Task) error {
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	encryptedTask, err := encrypt(taskJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt task: %w", err)
	}

	key := fmt.Sprintf("task:%s", task.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedTask), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache task: %w", err)
	}

	logger.Debug("Task cached successfully", zap.String("taskID", task.ID))
	return nil
}

func GetCachedTask(ctx context.Context, taskID string) (*model.Task, error) {
	key := fmt.Sprintf("task:%s", taskID)
	encryptedTaskStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Task not found in cache", zap.String("taskID", taskID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get task from cache: %w", err)
	}

	encryptedTask, err := base64.StdEncoding.DecodeString(encryptedTaskStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}

	taskJSON, err := decrypt(encryptedTask)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt task: %w", err)
	}

	var task model.Task
	err = json.Unmarshal(taskJSON, &task)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}

	logger.Debug("Task retrieved from cache", zap.String("taskID", taskID))
	return &task, nil
}

func DeleteCachedTask(ctx context.Context, taskID string) error {
	key := fmt.Sprintf("task:%s", taskID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete task from cache: %w", err)
	}
	logger.Debug("Task deleted from cache", zap.String("taskID", taskID))
	return nil
}

func CacheOrganization(ctx context.Context, organization *model.Organization) error {
	organizationJSON, err := json.Marshal(organization)
	if err != nil {
		return fmt.Errorf("failed to marshal organization: %w", err)
	}

	key := fmt.Sprintf("organization:%s", organization.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, organizationJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache organization: %w", err)
	}

	logger.Debug("Organization cached successfully", zap.String("organizationID", organization.ID))
	return nil
}

func DeleteCachedOrganization(ctx context.Context, organizationID string) error {
	key := fmt.Sprintf("organization:%s", organizationID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete organization from cache: %w", err)
	}
	logger.Debug("Organization deleted from cache", zap.String("organizationID", organizationID))
	return nil
}

func GetCachedOrganization(ctx context.Context, organizationID string) (*model.Organization, error) {
	key := fmt.Sprintf("organization:%s", organizationID)
	organizationJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Organization not found in cache", zap.String("organizationID", organizationID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get organization from cache: %w", err)
	}

	var organization model.Organization
	err = json.Unmarshal([]byte(organizationJSON), &organization)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization: %w", err)
	}

	logger.Debug("Organization retrieved from cache", zap.String("organizationID", organizationID))
	return &organization, nil
}

func CacheNotification(ctx context.Context, notification *model.Notification) error {
	notificationJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := fmt.Sprintf("notification:%s", notification.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, notificationJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache notification: %w", err)
	}

	logger.Debug("Notification cached successfully", zap.String("notificationID", notification.ID))
	return nil
}

func DeleteCachedNotification(ctx context.Context, notificationID string) error {
	key := fmt.Sprintf("notification:%s", notificationID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete notification from cache: %w", err)
	}
	logger.Debug("Notification deleted from cache", zap.String("notificationID", notificationID))
	return nil
}

func GetCachedNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	key := fmt.Sprintf("notification:%s", notificationID)
	notificationJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Notification not found in cache", zap.String("notificationID", notificationID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get notification from cache: %w", err)
	}

	var notification model.Notification
	err = json.Unmarshal([]byte(notificationJSON), &notification)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	logger.Debug("Notification retrieved from cache", zap.String("notificationID", notificationID))
	return &notification, nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
