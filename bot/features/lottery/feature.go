package lottery

import (
	"context"
	"fmt"

	"zocker/bot/common"
	"zocker/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the lottery commands and posts draw announcements
type Feature struct {
	session   *discordgo.Session
	lottery   interfaces.LotteryService
	channelID string
}

// New creates the lottery feature. channelID is where draw results are
// announced; empty disables announcements.
func New(session *discordgo.Session, lottery interfaces.LotteryService, channelID string) *Feature {
	return &Feature{
		session:   session,
		lottery:   lottery,
		channelID: channelID,
	}
}

// AnnounceDrawResult posts the outcome of a draw to the configured channel.
// It implements the draw worker's announcer contract.
func (f *Feature) AnnounceDrawResult(ctx context.Context, result *interfaces.LotteryDrawResult) error {
	if f.channelID == "" {
		log.Debug("No lottery channel configured, skipping draw announcement")
		return nil
	}

	embed := buildDrawEmbed(result)
	if _, err := f.session.ChannelMessageSendEmbed(f.channelID, embed); err != nil {
		return fmt.Errorf("failed to send draw announcement: %w", err)
	}
	return nil
}

func buildDrawEmbed(result *interfaces.LotteryDrawResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎰 Lottery Draw Results",
		Color: 0xFFD700,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Winning Numbers",
				Value: common.FormatLotteryNumbers(result.WinningNumbers, result.Superzahl),
			},
		},
	}

	if result.Skipped {
		embed.Description = "No tickets were sold this round. The pot starts over!"
		return embed
	}

	if len(result.Winners) == 0 {
		embed.Description = fmt.Sprintf("Nobody won this round. The pot of **%s coins** rolls over!",
			common.FormatBalance(result.PoolAfter))
	} else {
		winners := ""
		for _, w := range result.Winners {
			winners += fmt.Sprintf("<@%d> — %s: **%s coins**\n", w.UserID, w.Tier.Label, common.FormatBalance(w.Payout))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Winners (%s coins paid out)", common.FormatBalance(result.TotalPayout)),
			Value: winners,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Next Draw",
		Value: common.FormatDiscordTimestamp(result.NextDrawAt, "F"),
	})

	return embed
}
