package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestAPIKey(t *testing.T) {
	Convey("API key storage", t, func() {
		Reset(func() { _ = DeleteAPIKey() })

		Convey("Should report a missing key", func() {
			_, err := GetAPIKey()
			So(errors.Is(err, ErrNoKey), ShouldBeTrue)
		})

		Convey("Should round-trip a stored key", func() {
			So(SetAPIKey("stored"), ShouldBeNil)
			got, err := GetAPIKey()
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "stored")
		})

		Convey("Should refuse to store an empty key", func() {
			So(SetAPIKey(""), ShouldNotBeNil)
		})

		Convey("LookupAPIKey", func() {
			Convey("Should prefer the configured key", func() {
				So(SetAPIKey("stored"), ShouldBeNil)
				So(LookupAPIKey("configured"), ShouldEqual, "configured")
			})

			Convey("Should fall back to the keyring", func() {
				So(SetAPIKey("stored"), ShouldBeNil)
				So(LookupAPIKey(""), ShouldEqual, "stored")
			})

			Convey("Should be empty with nothing configured or stored", func() {
				So(LookupAPIKey(""), ShouldBeEmpty)
			})
		})
	})
}
