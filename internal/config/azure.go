package config

// AzureConfig holds Azure-specific configuration
type AzureConfig struct {
	ServiceBusConnectionString  string `env:"SERVICEBUS_CONNECTION_STRING"`
	ServiceBusNamespace         string `env:"SERVICEBUS_NAMESPACE" envDefault:"lookup-queue"`
	QueueName                   string `env:"SERVICEBUS_QUEUE_NAME" envDefault:"lookups"`
	BlobStorageConnectionString string `env:"BLOB_STORAGE_CONNECTION_STRING"`
	BlobContainerName           string `env:"BLOB_CONTAINER_NAME" envDefault:"lookups"`
}

// ValidateAzureConfig validates Azure-specific configuration
func (c *AzureConfig) ValidateAzureConfig() error {
	if c.ServiceBusConnectionString == "" {
		return &ConfigError{Field: "SERVICEBUS_CONNECTION_STRING", Message: "Service Bus connection string is required"}
	}
	if c.BlobStorageConnectionString == "" {
		return &ConfigError{Field: "BLOB_STORAGE_CONNECTION_STRING", Message: "Blob Storage connection string is required"}
	}
	return nil
}
