package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/config"
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/errors"
	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// CreateEvalCommand creates the /dev eval command
func CreateEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code against the live bot (dangerous)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Go code or expression to evaluate",
			Required:    true,
		},
	)
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if !isDev(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Access denied:** this command is for the developer only.")
			return
		}

		// Defer because compiling the script can take a moment
		ctx.Defer()

		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error loading stdlib: %v", err))
			return
		}

		// Expose the live bot objects as globals inside the script
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"Svc":     reflect.ValueOf(svc),
			"Records": reflect.ValueOf(records),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/OrionStudios/JarvisBotGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error registering variables: %v", err))
			return
		}

		_, err := i.Eval(`import . "github.com/OrionStudios/JarvisBotGo/internal/commands/dev"`)
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error importing variables: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Execution error:**\n```go\n%v\n```", err)
		} else {
			var resStr string
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncated)"
			}

			output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
		}

		elapsed := time.Since(start)
		logger.Debug(fmt.Sprintf("Eval completed in %s", elapsed), "DevEval")

		ctx.EditReply(output)
	}()
	return nil
}

// isDev matches against the configured developer user ID
func isDev(userID string) bool {
	cfg := config.Get()
	return cfg.DevUserID != "" && userID == cfg.DevUserID
}
