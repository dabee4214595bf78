package testsuite

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/brocaar/bc125csv/internal/csvio"
	"github.com/brocaar/bc125csv/internal/scanner"
	"github.com/brocaar/bc125csv/internal/transfer"
)

func TestImportExportCycle(t *testing.T) {
	in := "Channel,Name,Frequency,Modulation,CTCSS/DCS,Delay,Lockout,Priority\n" +
		"1,PMR Channel 1,446.0062,FM,none,2,no,no\n" +
		"2,PMR Channel 2,446.0187,FM,no tone,2,no,no\n" +
		"70,Marine 16,156.8000,FM,127.3 Hz,0,no,yes\n" +
		"500,LAPD,453.9875,NFM,DCS 026,-5,yes,no\n"

	Convey("Given csv data programmed into a stub scanner", t, func() {
		channels, err := csvio.Read(strings.NewReader(in))
		So(err, ShouldBeNil)
		So(channels, ShouldHaveLength, 4)

		s := scanner.NewStub("")
		So(transfer.Import(s, channels, transfer.AllBanks()), ShouldBeNil)

		Convey("Then an export returns the same channel set", func() {
			out, err := transfer.Export(s, transfer.AllBanks(), false)
			So(err, ShouldBeNil)
			So(out, ShouldResemble, channels)
		})

		Convey("Then exporting to csv and re-importing is lossless", func() {
			out, err := transfer.Export(s, transfer.AllBanks(), false)
			So(err, ShouldBeNil)

			var b bytes.Buffer
			So(csvio.Write(&b, out, false), ShouldBeNil)
			reread, err := csvio.Read(&b)
			So(err, ShouldBeNil)
			So(reread, ShouldResemble, channels)
		})

		Convey("Then a sparse export with empty slots is lossless as well", func() {
			out, err := transfer.Export(s, []int{1, 2}, true)
			So(err, ShouldBeNil)
			So(out, ShouldHaveLength, 100)

			var b bytes.Buffer
			So(csvio.Write(&b, out, true), ShouldBeNil)
			reread, err := csvio.Read(&b)
			So(err, ShouldBeNil)

			So(reread, ShouldHaveLength, 3)
			So(reread[1], ShouldResemble, channels[1])
			So(reread[2], ShouldResemble, channels[2])
			So(reread[70], ShouldResemble, channels[70])
		})

		Convey("When bank 1 is cleared by importing an empty set", func() {
			So(transfer.Import(s, nil, []int{1}), ShouldBeNil)

			Convey("Then the other banks are untouched", func() {
				out, err := transfer.Export(s, transfer.AllBanks(), false)
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 2)
				So(out[70], ShouldResemble, channels[70])
				So(out[500], ShouldResemble, channels[500])
			})
		})
	})

	Convey("Given a UBC125XLT stub", t, func() {
		channels, err := csvio.Read(strings.NewReader(in))
		So(err, ShouldBeNil)

		s := scanner.NewStub(scanner.ModelUBC125XLT)

		Convey("Then the NFM channel blocks the whole import", func() {
			err := transfer.Import(s, channels, transfer.AllBanks())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "NFM")

			_, serr := s.GetChannel(1)
			So(serr, ShouldEqual, scanner.ErrNotProgramming)
		})
	})
}
