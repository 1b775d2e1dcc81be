package logger

import "go.uber.org/zap"

// NOOPLogger discards everything. Used as the server default and in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a human-readable development logger for local runs and a JSON
// production logger everywhere else.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)

	switch appEnv {
	case "", "local":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar().With("env", envName(appEnv)), nil
}

func envName(appEnv string) string {
	if appEnv == "" {
		return "local"
	}
	return appEnv
}
