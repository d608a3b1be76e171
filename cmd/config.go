package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr string

	KafkaHost                 string
	KafkaConsumerGroup        string
	KafkaBasketConfirmedTopic string
	KafkaOrderChangedTopic    string

	// DispatchRadiusKm bounds partner selection; 0 means any distance.
	DispatchRadiusKm float64

	// DispatchSchedule is the six-field cron expression of the dispatch sweep.
	DispatchSchedule string

	// TrackingRetention is how long tracking samples are kept; the newest
	// sample per order survives regardless.
	TrackingRetention time.Duration

	// TrackingPruneSchedule is the six-field cron expression of the prune job.
	TrackingPruneSchedule string
}
