package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shua-cli/shua/filesystem"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Log Setup", t, func() {
		Convey("Should stay silent when disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
			So(func() { Info("ignored") }, ShouldNotPanic)
			So(func() { WithFields(map[string]any{"a": 1}).Info("ignored") }, ShouldNotPanic)
		})

		Convey("Should write session-tagged lines when enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Infof("resolved %s", "abc123")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "resolved abc123")
			So(strings.Contains(string(data), "session="), ShouldBeTrue)
		})
	})
}
