package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers", t, func() {
		Convey("Should keep the text content", func() {
			So(Fg(lipgloss.Color("2"))("ok"), ShouldContainSubstring, "ok")
			So(Bold("title"), ShouldContainSubstring, "title")
			So(Faint("hint"), ShouldContainSubstring, "hint")
		})
	})
}
