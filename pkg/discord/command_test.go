package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("warn", "Warn a user", "moderation", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "warn" {
		t.Errorf("Name = %v, want %v", cmd.Name, "warn")
	}

	if cmd.Description != "Warn a user" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Warn a user")
	}

	if cmd.Category != "moderation" {
		t.Errorf("Category = %v, want %v", cmd.Category, "moderation")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "The user to warn",
		Required:    true,
	}

	cmd := NewCommand("warn", "Warn a user", "moderation", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "user" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "user")
	}
}

// TestCommandWithPermissions verifies the permission builder methods
func TestCommandWithPermissions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("modrole", "Toggle a moderator role", "moderation", handler).
		WithUserPermissions(discordgo.PermissionAdministrator).
		WithBotPermissions(discordgo.PermissionSendMessages)

	if cmd.UserPermissions != discordgo.PermissionAdministrator {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionAdministrator)
	}

	if cmd.BotPermissions != discordgo.PermissionSendMessages {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionSendMessages)
	}
}

// TestCommandAsDev verifies the AsDev builder method
func TestCommandAsDev(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("eval", "Evaluate code", "dev", handler).AsDev()

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "The reason",
		Required:    true,
	}

	cmd := NewCommand("warn", "Warn a user", "moderation", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "warn" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "warn")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

// TestCommandCollection verifies the thread-safe command registry
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("new collection size = %d, want 0", cc.Size())
	}

	cmd := NewCommand("ping", "Ping the bot", "util", func(ctx *CommandContext) error { return nil })
	cc.Set("ping", cmd)

	got, ok := cc.Get("ping")
	if !ok || got.Name != "ping" {
		t.Errorf("Get(ping) = %v, %v", got, ok)
	}

	if _, ok := cc.Get("missing"); ok {
		t.Error("Get(missing) should not find a command")
	}

	all := cc.All()
	if len(all) != 1 {
		t.Errorf("All() length = %d, want 1", len(all))
	}
}

// TestFullCommandName verifies subcommand name resolution
func TestFullCommandName(t *testing.T) {
	plain := discordgo.ApplicationCommandInteractionData{Name: "warn"}
	if got := fullCommandName(plain); got != "warn" {
		t.Errorf("fullCommandName = %q, want %q", got, "warn")
	}

	sub := discordgo.ApplicationCommandInteractionData{
		Name: "config",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "set", Type: discordgo.ApplicationCommandOptionSubCommand},
		},
	}
	if got := fullCommandName(sub); got != "config.set" {
		t.Errorf("fullCommandName = %q, want %q", got, "config.set")
	}
}
