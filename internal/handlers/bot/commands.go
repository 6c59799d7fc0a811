package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/watchregistry"
)

// Replies. Every refusal uses replyRefused so no detail leaks.
const (
	replyWelcome         = "Welcome! Up and running. Send /help for the commands."
	replyRefused         = "Request refused."
	replyQuotaExceeded   = "You are watching too many transfers. Unwatch one first."
	replyWatching        = "Now watching this."
	replyAlreadyWatching = "Already watching this for you."
	replyUnwatched       = "Unwatched that."
	replyNotWatching     = "Cannot unwatch what is not watched."
	replyNothingWatched  = "You are not watching anything."
	replyAllowed         = "%d was added to the allow-list."
	replyAlreadyAllowed  = "%d is already on the allow-list."
	replyDisallowed      = "%d was removed from the allow-list."
	replyNotAllowed      = "%d is not on the allow-list."
	replyStatus          = "Allow-list: [%s]\nNow watching: %d"
)

const replyHelp = `/watch <token> <address> [alias] - notify transfers of token into address
/unwatch <token> <address> - stop notifying
/list - show your watches
/whoami - show your chat id`

// handlerFunc runs one command for sender and returns the reply text.
type handlerFunc func(ctx context.Context, sender watchregistry.Owner, args []string) string

func (b *bot) routes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"start":       b.start,
		"help":        b.help,
		"whoami":      b.whoami,
		"watch":       b.allowedOnly(b.watch),
		"unwatch":     b.allowedOnly(b.unwatch),
		"list":        b.allowedOnly(b.list),
		"allow":       b.adminOnly(b.allow),
		"whitelist":   b.adminOnly(b.allow),
		"disallow":    b.adminOnly(b.disallow),
		"unwhitelist": b.adminOnly(b.disallow),
		"status":      b.adminOnly(b.status),
	}
}

// allowedOnly refuses senders missing from the allow-list.
func (b *bot) allowedOnly(next handlerFunc) handlerFunc {
	return func(ctx context.Context, sender watchregistry.Owner, args []string) string {
		if !b.registry.IsAllowed(sender) {
			logger.Info(ctx, "refusing command from a sender not on the allow-list")
			return replyRefused
		}
		return next(ctx, sender, args)
	}
}

// adminOnly refuses everyone but the administrator.
func (b *bot) adminOnly(next handlerFunc) handlerFunc {
	return func(ctx context.Context, sender watchregistry.Owner, args []string) string {
		if !b.registry.IsAdmin(sender) {
			logger.Info(ctx, "refusing administrator command")
			return replyRefused
		}
		return next(ctx, sender, args)
	}
}

func (b *bot) start(context.Context, watchregistry.Owner, []string) string {
	return replyWelcome
}

func (b *bot) help(context.Context, watchregistry.Owner, []string) string {
	return html.EscapeString(replyHelp)
}

func (b *bot) whoami(_ context.Context, sender watchregistry.Owner, _ []string) string {
	return strconv.FormatInt(int64(sender), 10)
}

func (b *bot) watch(ctx context.Context, sender watchregistry.Owner, args []string) string {
	token, destination, alias, err := parseWatchArgs(args)
	if err != nil {
		logger.Debug(ctx, "invalid watch arguments", "error", err)
		return replyRefused
	}

	_, err = b.registry.AddWatch(ctx, sender, token, destination, alias)
	switch {
	case err == nil:
		return replyWatching
	case errors.Is(err, watchregistry.ErrAlreadyWatching):
		return replyAlreadyWatching
	case errors.Is(err, watchregistry.ErrQuotaExceeded):
		return replyQuotaExceeded
	default:
		logger.Warn(ctx, "watch refused", "error", err)
		return replyRefused
	}
}

func (b *bot) unwatch(ctx context.Context, sender watchregistry.Owner, args []string) string {
	token, destination, err := parseUnwatchArgs(args)
	if err != nil {
		logger.Debug(ctx, "invalid unwatch arguments", "error", err)
		return replyRefused
	}

	err = b.registry.RemoveWatch(ctx, sender, token, destination)
	switch {
	case err == nil:
		return replyUnwatched
	case errors.Is(err, watchregistry.ErrNotWatching):
		return replyNotWatching
	default:
		logger.Warn(ctx, "unwatch refused", "error", err)
		return replyRefused
	}
}

func (b *bot) list(ctx context.Context, sender watchregistry.Owner, _ []string) string {
	watches := b.registry.ListOwnerWatches(ctx, sender)
	if len(watches) == 0 {
		return replyNothingWatched
	}

	var sb strings.Builder
	for i, w := range watches {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s into %s", i+1, w.TokenAddress.Hex(), w.DestinationAddress.Hex())
		if w.DisplayAlias != "" {
			fmt.Fprintf(&sb, " (%s)", html.EscapeString(w.DisplayAlias))
		}
	}
	return sb.String()
}

func (b *bot) allow(ctx context.Context, _ watchregistry.Owner, args []string) string {
	owner, err := parseOwnerArgs(args)
	if err != nil {
		return replyRefused
	}

	err = b.registry.Allow(ctx, owner)
	switch {
	case err == nil:
		return fmt.Sprintf(replyAllowed, owner)
	case errors.Is(err, watchregistry.ErrAlreadyAllowed):
		return fmt.Sprintf(replyAlreadyAllowed, owner)
	default:
		logger.Warn(ctx, "allow refused", "error", err)
		return replyRefused
	}
}

func (b *bot) disallow(ctx context.Context, _ watchregistry.Owner, args []string) string {
	owner, err := parseOwnerArgs(args)
	if err != nil {
		return replyRefused
	}

	err = b.registry.Disallow(ctx, owner)
	switch {
	case err == nil:
		return fmt.Sprintf(replyDisallowed, owner)
	case errors.Is(err, watchregistry.ErrNotAllowed):
		return fmt.Sprintf(replyNotAllowed, owner)
	default:
		logger.Warn(ctx, "disallow refused", "error", err)
		return replyRefused
	}
}

func (b *bot) status(ctx context.Context, _ watchregistry.Owner, _ []string) string {
	status := b.registry.Status(ctx)

	ids := make([]string, len(status.AllowList))
	for i, o := range status.AllowList {
		ids[i] = strconv.FormatInt(int64(o), 10)
	}

	return fmt.Sprintf(replyStatus, strings.Join(ids, ","), status.WatchCount)
}
