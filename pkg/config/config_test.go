package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestJarvisEnabled(t *testing.T) {
	resetForTesting()
	os.Setenv("groqApiKey", "gsk-test")
	config, _ := Load()

	if !config.JarvisEnabled() {
		t.Error("JarvisEnabled() should return true when groqApiKey is set")
	}

	resetForTesting()
	os.Unsetenv("groqApiKey")
	config, _ = Load()

	if config.JarvisEnabled() {
		t.Error("JarvisEnabled() should return false without groqApiKey")
	}
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("botToken")
	os.Unsetenv("devGuildId")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("dataDir")
	os.Unsetenv("commandPrefix")
	os.Unsetenv("jarvisTrigger")
	os.Unsetenv("groqModel")
	os.Unsetenv("MQTT_Host")
	os.Unsetenv("MQTT_Port")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	// Check default values
	if config.MongoDBURL != "" {
		t.Errorf("MongoDBURL default = %v, want empty (file backend)", config.MongoDBURL)
	}

	if config.DBName != "JarvisBot" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "JarvisBot")
	}

	if config.DataDir != "data" {
		t.Errorf("DataDir default = %v, want %v", config.DataDir, "data")
	}

	if config.CommandPrefix != "!" {
		t.Errorf("CommandPrefix default = %v, want %v", config.CommandPrefix, "!")
	}

	if config.JarvisTrigger != "jarvis" {
		t.Errorf("JarvisTrigger default = %v, want %v", config.JarvisTrigger, "jarvis")
	}

	if config.GroqModel != "llama-3.3-70b-versatile" {
		t.Errorf("GroqModel default = %v, want %v", config.GroqModel, "llama-3.3-70b-versatile")
	}

	if config.MQTTHost != "localhost" {
		t.Errorf("MQTTHost default = %v, want %v", config.MQTTHost, "localhost")
	}

	if config.MQTTPort != "1883" {
		t.Errorf("MQTTPort default = %v, want %v", config.MQTTPort, "1883")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}
}
