package main

import (
	_ "github.com/eleven-am/vision-backend/docs"
	"github.com/eleven-am/vision-backend/internal/bootstrap"
)

// @title Vision Backend API
// @version 1.0.0
// @description HTTP service exposing Qwen3-VL vision-language tasks backed by a vLLM engine

// @host localhost:8000
// @BasePath /api

func main() {
	bootstrap.Run()
}
