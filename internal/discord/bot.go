package discord

import (
	"context"
	"fmt"
	"log"

	"ffinfo/internal/command"
	"ffinfo/internal/config"
	"ffinfo/internal/pipeline"
	"ffinfo/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg       *discordgo.Session
	storage  *storage.Storage
	pipeline *pipeline.Pipeline
	cfg      *config.Config
}

// StartBot starts the Discord bot and blocks until ctx is done.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage, pl *pipeline.Pipeline) error {
	b := &Bot{
		cfg:      cfg,
		storage:  store,
		pipeline: pl,
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		}
	} else {
		log.Println("[INFO] Registering slash commands skipped")
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onGuildCreate is called when the bot joins a guild
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onInteractionCreate dispatches slash commands to the registry
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := command.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s\n", cmdName)
		return
	}

	ctx := &command.SlashContext{
		Session:  s,
		Event:    i,
		Storage:  b.storage,
		Pipeline: b.pipeline,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Println("[ERR] Error running slash command:", err)
	}
}

// registerCommands registers slash commands for a guild, dropping any the
// registry no longer knows.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	wanted := make(map[string]bool)
	for _, cmd := range command.All() {
		wanted[cmd.Name()] = true
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	for _, old := range existing {
		if !wanted[old.Name] {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
			}
		}
	}

	for _, cmd := range command.All() {
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, cmd.SlashDefinition()); err != nil {
			log.Printf("[ERR] Can't create command %s: %v", cmd.Name(), err)
		}
	}
	return nil
}
