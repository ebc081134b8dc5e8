package command

type Middleware func(Command) Command

type WrappedCommand struct {
	Command
	Wrap func(ctx *SlashContext) error
}

func (w *WrappedCommand) Run(ctx *SlashContext) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly silently drops invocations from outside a guild (DMs).
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *SlashContext) error {
				if ctx.Event.GuildID == "" {
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithAdminOnly rejects non-administrators for commands that require it.
func WithAdminOnly() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *SlashContext) error {
				if cmd.RequireAdmin() && !isAdministrator(ctx.Session, ctx.Event.GuildID, ctx.Event.Member) {
					return respondEphemeral(ctx.Session, ctx.Event, "You must be an Admin to use this command.")
				}
				return cmd.Run(ctx)
			},
		}
	}
}
