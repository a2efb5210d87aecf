package main

import (
	"context"
	"log"

	"github.com/drezzup/catalog-service/config"
	"github.com/drezzup/catalog-service/internal/app"
	"github.com/drezzup/catalog-service/internal/infrastructure/objectstorage"

	postgresDriver "github.com/drezzup/catalog-service/internal/infrastructure/database/postgres"
	kafkaDriver "github.com/drezzup/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/segmentio/kafka-go"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	uploader, err := objectstorage.CreateS3Uploader(context.Background(), config.S3Config)
	if err != nil {
		log.Fatalf("Failed to set up object storage: %v", err)
	}

	var producer *kafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		producer = kafkaDriver.CreateKafkaProducer(config)
	}

	server := app.App{
		DB:            db,
		Config:        config,
		Uploader:      uploader,
		KafkaProducer: producer,
	}

	server.Start()
}
