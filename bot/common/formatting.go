package common

import (
	"fmt"
	"strings"
	"time"

	"zocker/domain/entities"
)

// FormatBalance formats a currency amount with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatGameResult formats the outcome of a one-shot game round
func FormatGameResult(outcome *entities.Outcome, newBalance int64) string {
	if outcome.Winnings > 0 {
		return fmt.Sprintf("%s\n🎉 **You won %s coins!** (%.1fx) New balance: **%s coins**",
			outcome.Detail, FormatBalance(outcome.Winnings), outcome.Multiplier, FormatBalance(newBalance))
	}
	return fmt.Sprintf("%s\n😔 **You lost %s coins.** New balance: **%s coins**",
		outcome.Detail, FormatBalance(outcome.Bet), FormatBalance(newBalance))
}

// FormatHand renders a blackjack hand with its value, e.g. "A♠ K♥ (21)"
func FormatHand(hand []entities.Card) string {
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(cards, " "), entities.HandValue(hand))
}

// FormatLotteryNumbers renders ticket or draw numbers, e.g. "3 7 12 25 38 49 + SZ 4"
func FormatLotteryNumbers(numbers []int, superzahl int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s + SZ %d", strings.Join(parts, " "), superzahl)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
