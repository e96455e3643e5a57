package config

import (
	"github.com/go-redis/redis/v8"
	"github.com/unifeed/unifeed/global"
	"github.com/unifeed/unifeed/logger"
)

func initRedis() {
	redisConf := AppConfig.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     redisConf.Addr,
		Password: redisConf.Password,
		DB:       redisConf.DB,
	})

	_, err := client.Ping(client.Context()).Result()
	if err != nil {
		logger.L.Fatalf("Failed to connect to Redis: %v", err)
	}

	global.RedisDB = client
}
