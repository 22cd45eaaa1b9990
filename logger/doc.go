// Package logger provides structured logging for restkit built on zerolog.
//
// The default output is a compact console format; set Format to "json" for
// machine-readable logs. A client typically tags its logger with a component:
//
//	log := logger.NewDefault("billing").WithComponent("restclient")
//	log.Info("request sent", logger.Fields("method", "GET", "status", 200))
package logger
