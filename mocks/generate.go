package mocks

//go:generate mockgen -destination=./mock_sink.go -package=mocks github.com/rxtech-lab/argo-logger/pkg/logging Sink
