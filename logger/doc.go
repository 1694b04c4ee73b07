// Package logger wraps zerolog for the demo tooling. The pipeline core
// itself never logs; commands and data loaders use this package for
// structured output in console or JSON format.
//
//	logger.Init(logger.Config{Level: "debug", Format: "console"})
//	log := logger.WithComponent("socialdemo")
//	log.Info("dataset loaded", logger.Fields("comments", n))
package logger
