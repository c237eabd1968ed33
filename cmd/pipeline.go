package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/shua-cli/shua/auth"
	"github.com/shua-cli/shua/color"
	"github.com/shua-cli/shua/config"
	"github.com/shua-cli/shua/icon"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/log"
	"github.com/shua-cli/shua/player"
	"github.com/shua-cli/shua/resolver"
	"github.com/shua-cli/shua/selection"
	"github.com/shua-cli/shua/style"
	"github.com/shua-cli/shua/util"
	"github.com/shua-cli/shua/youtube"
	"github.com/spf13/viper"
)

// request holds the raw overrides of one invocation.
type request struct {
	Season  mo.Option[int]
	Episode mo.Option[int]
}

// optionalInt treats anything that is not a decimal integer as absent.
func optionalInt(raw string) mo.Option[int] {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(n)
}

// pipeline wires selection, resolution and playback for a single run.
type pipeline struct {
	selector   *selection.Resolver
	videos     *resolver.Resolver
	dispatcher *player.Dispatcher
	hasKey     bool
}

func newPipeline() *pipeline {
	cfg := resolver.NewConfig(
		auth.LookupAPIKey(viper.GetString(key.YouTubeAPIKey)),
		viper.GetString(key.YouTubeChannelHandle),
		viper.GetString(key.YouTubeTag),
		config.SearchTimeout(),
	)

	dispatcher := &player.Dispatcher{
		Command:  viper.GetString(key.Player),
		Fallback: viper.GetString(key.PlayerFallback),
		Launcher: player.ExecLauncher{},
	}
	if viper.GetBool(key.PlaybackExtractStream) {
		dispatcher.Extract = youtube.StreamURL
	}

	return &pipeline{
		selector:   selection.New(nil),
		videos:     resolver.New(cfg, youtube.New(viper.GetInt(key.SearchMaxResults))),
		dispatcher: dispatcher,
		hasKey:     cfg.HasCredentials(),
	}
}

func (p *pipeline) run(ctx context.Context, req request) error {
	sel, err := p.selector.Resolve(req.Season, req.Episode)
	if err != nil {
		return err
	}

	title := resolver.Title(sel)
	log.WithFields(map[string]any{"season": sel.Season, "episode": sel.Episode, "keyed": p.hasKey}).Info("resolving episode")

	erase := util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Search), title))
	ref, err := p.videos.Resolve(ctx, sel)
	erase()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Play)),
		style.Bold(title),
		style.Faint(player.WatchURL(ref)),
	)

	return p.dispatcher.Dispatch(ctx, ref)
}
