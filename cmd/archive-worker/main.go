package main

import (
	"context"

	"drivethru/config"
	"drivethru/internal/archive"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	reader := config.NewKafkaReader(config.ArchiveTopic, "archive-worker")
	defer reader.Close()

	consumer := archive.NewConsumer(reader, archive.NewPostgresStore(db))
	consumer.Start(context.Background())
}
