package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvVars struct {
	Role        string // master or worker
	Host        string
	Port        int // gRPC port
	ApiPort     int // HTTP port (master only)
	RabbitHost  string
	RabbitUser  string
	RabbitPass  string
	WorkQueue   string
	ResultQueue string
	NodeLog     bool
	ServerLog   bool
	Config      string // path of the ranking defaults
}

func ReadEnvVars() (EnvVars, error) {
	// Loading .env file if it exists
	// It will not override already existing env vars
	_ = godotenv.Load()
	port, err := readIntEnvVar("PORT")
	if err != nil {
		return EnvVars{}, err
	}
	role := readStringEnvVarOr("ROLE", "master")
	if role != "master" && role != "worker" {
		return EnvVars{}, fmt.Errorf("ROLE must be master or worker, got %s", role)
	}
	rabbitHost := readStringEnvVarOr("RABBIT_HOST", "")
	if role == "worker" && rabbitHost == "" {
		return EnvVars{}, fmt.Errorf("RABBIT_HOST not set (required by workers)")
	}
	return EnvVars{
		Role:        role,
		Host:        readStringEnvVarOr("HOST", ""),
		Port:        port,
		ApiPort:     ReadIntEnvVarOr("API_PORT", 8080),
		RabbitHost:  rabbitHost,
		RabbitUser:  readStringEnvVarOr("RABBIT_USER", "guest"),
		RabbitPass:  readStringEnvVarOr("RABBIT_PASSWORD", "guest"),
		WorkQueue:   readStringEnvVarOr("WORK_QUEUE", "work"),
		ResultQueue: readStringEnvVarOr("RESULT_QUEUE", "result"),
		NodeLog:     readBoolEnvVarOr("NODE_LOG", false),
		ServerLog:   readBoolEnvVarOr("SERVER_LOG", false),
		Config:      readStringEnvVarOr("CONFIG", "config.json"),
	}, nil
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s not set", name)
	}
	return value, nil
}

func readIntEnvVar(name string) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("Could not convert %s to a number: %v", name, err)
	}
	return value, nil
}

func readStringEnvVarOr(name string, or string) string {
	value, err := readStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func ReadIntEnvVarOr(name string, or int) int {
	value, err := readIntEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func readBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
