package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger는 전역 로거 인스턴스
var Logger zerolog.Logger

// ServiceType은 서비스 타입을 나타내는 정수입니다
type ServiceType int

const (
	ServiceTypeMember ServiceType = iota
	ServiceTypeMatching
	ServiceTypePush
)

var serviceNames = map[ServiceType]string{
	ServiceTypeMember:   "member",
	ServiceTypeMatching: "matching",
	ServiceTypePush:     "push",
}

// InitLogger는 로거를 초기화합니다
func InitLogger(serviceType ServiceType) {
	// 로그 포맷 설정
	zerolog.TimeFieldFormat = time.RFC3339
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	Logger = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", serviceNames[serviceType]).
		Logger()
}

// Info는 정보 로그를 출력합니다
func Info(msg string) {
	Logger.Info().Msg(msg)
}

// Warn은 경고 로그를 출력합니다
func Warn(msg string) {
	Logger.Warn().Msg(msg)
}

// Error는 에러 로그를 출력합니다
func Error(msg string, err error) {
	Logger.Error().Err(err).Msg(msg)
}
