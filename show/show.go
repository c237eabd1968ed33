// Package show holds the fixed season table of the show: how many episodes each season has
// and the ordinal each season is called by in user-facing messages.
package show

import (
	"errors"
	"fmt"
)

// ErrUnknownSeason is returned for a season outside the table.
var ErrUnknownSeason = errors.New("unknown season")

// First and Last bound the seasons that are published consistently.
const (
	First = 1
	Last  = 10
)

var episodes = [...]int{33, 26, 26, 20, 24, 23, 24, 27, 24, 22}

var names = [...]string{
	"პირველ",
	"მეორე",
	"მესამე",
	"მეოთხე",
	"მეხუთე",
	"მეექვსე",
	"მეშვიდე",
	"მერვე",
	"მეცხრე",
	"მეათე",
}

// Known reports whether season is in the table.
func Known(season int) bool {
	return season >= First && season <= Last
}

// MaxEpisode returns the number of episodes of season.
func MaxEpisode(season int) (int, error) {
	if !Known(season) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSeason, season)
	}
	return episodes[season-First], nil
}

// DisplayName returns the Georgian ordinal stem of season, as used in "<name> სეზონში".
func DisplayName(season int) (string, error) {
	if !Known(season) {
		return "", fmt.Errorf("%w: %d", ErrUnknownSeason, season)
	}
	return names[season-First], nil
}

// Seasons returns every known season in order.
func Seasons() []int {
	seasons := make([]int, 0, Last-First+1)
	for s := First; s <= Last; s++ {
		seasons = append(seasons, s)
	}
	return seasons
}
