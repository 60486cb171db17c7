package cli

import (
	"habitual/internal/config"
	"habitual/internal/interpreter"
	"habitual/internal/oracle"
	"habitual/internal/session"
	"habitual/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Settings config.Settings
	User     string
}

// Session loads storage and builds the user's session.
func (ctx *Context) Session() (*session.Session, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	return session.New(ctx.User, ctx.Store, session.Options{
		Timeout:          ctx.Settings.SessionTimeout,
		AutoSaveInterval: ctx.Settings.AutoSaveInterval,
	})
}

// Interpreter builds the command interpreter. Without an API key the
// oracle layer is skipped and the deterministic fallback handles
// everything the keyword layers miss.
func (ctx *Context) Interpreter() *interpreter.Interpreter {
	var client oracle.Client
	if ctx.Settings.OracleAPIKey != "" {
		cfg := oracle.DefaultConfig(ctx.Settings.OracleAPIKey)
		if ctx.Settings.OracleBaseURL != "" {
			cfg.BaseURL = ctx.Settings.OracleBaseURL
		}
		if ctx.Settings.OracleModel != "" {
			cfg.Model = ctx.Settings.OracleModel
		}
		if ctx.Settings.OracleMaxRetries > 0 {
			cfg.MaxRetries = ctx.Settings.OracleMaxRetries
		}
		client = oracle.NewChatClient(cfg)
	}
	return interpreter.New(client, ctx.Settings.Debug)
}
