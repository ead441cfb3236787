package config

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	Minio    Minio
	RabbitMQ RabbitMQ
	Logger   Logger
}

type MongoDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Minio struct {
	Host       string
	Port       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}
