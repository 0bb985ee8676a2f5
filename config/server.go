package config

import "os"

const defaultPort = "3001"

type ServerConfig struct {
	Port string
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &ServerConfig{
		Port: port,
	}
}
