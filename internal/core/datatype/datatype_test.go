package datatype_test

import (
	"encoding/json"
	"time"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Date", func() {
	day := datatype.NewDate(2024, time.April, 3)

	It("stores a midnight time and nothing for the zero date", func() {
		v, err := day.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeAssignableToTypeOf(time.Time{}))
		Expect(v.(time.Time).Format(time.RFC3339)).To(Equal("2024-04-03T00:00:00Z"))

		v, err = datatype.Date{}.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNil())
	})

	DescribeTable("Scan",
		func(src any) {
			var d datatype.Date
			Expect(d.Scan(src)).To(Succeed())
			Expect(d).To(Equal(day))
		},
		Entry("driver time", time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)),
		Entry("time with a clock part", time.Date(2024, time.April, 3, 17, 45, 0, 0, time.UTC)),
		Entry("plain text", "2024-04-03"),
		Entry("bytes", []byte("2024-04-03")),
		Entry("sqlite timestamp text", "2024-04-03 00:00:00+00:00"),
	)

	It("scans NULL as the zero date", func() {
		d := day
		Expect(d.Scan(nil)).To(Succeed())
		Expect(d.IsZero()).To(BeTrue())
	})

	It("rejects text that is not a date", func() {
		var d datatype.Date
		Expect(d.Scan("tomorrow")).To(HaveOccurred())
		Expect(d.Scan(42)).To(HaveOccurred())
	})

	It("formats as YYYY-MM-DD", func() {
		Expect(day.String()).To(Equal("2024-04-03"))
		Expect(datatype.FormatDate(nil)).To(BeEmpty())
		out, err := json.Marshal(struct {
			D datatype.Date  `json:"d"`
			Z datatype.Date  `json:"z"`
			P *datatype.Date `json:"p"`
		}{D: day})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{"d":"2024-04-03","z":null,"p":null}`))
	})

	It("compares and shifts by whole days", func() {
		next := day.AddDays(1)
		Expect(day.Before(next)).To(BeTrue())
		Expect(next.String()).To(Equal("2024-04-04"))
		Expect(day.AddDays(-3).String()).To(Equal("2024-03-31"))
		Expect(datatype.DateOf(time.Date(2024, time.April, 3, 23, 59, 0, 0, time.UTC)).Equal(day)).To(BeTrue())
	})
})

var _ = Describe("Clock", func() {
	It("parses with and without seconds", func() {
		c, err := datatype.ParseClock("09:05")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.String()).To(Equal("09:05"))

		c, err = datatype.ParseClock("17:30:59")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.String()).To(Equal("17:30"))

		_, err = datatype.ParseClock("25:00")
		Expect(err).To(HaveOccurred())
	})

	It("stores HH:MM and scans text, bytes and times", func() {
		v, err := datatype.NewClock(9, 0).Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("09:00"))

		var c datatype.Clock
		Expect(c.Scan([]byte("08:15"))).To(Succeed())
		Expect(c.Minutes()).To(Equal(8*60 + 15))
		Expect(c.Scan(time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC))).To(Succeed())
		Expect(c.String()).To(Equal("18:00"))
		Expect(c.Scan("noon")).To(HaveOccurred())
	})

	It("computes hours between two clocks", func() {
		in, out := datatype.NewClock(9, 0), datatype.NewClock(17, 20)

		Expect(*datatype.Hours(&in, &out)).To(Equal(8.33))
		Expect(datatype.Hours(&in, nil)).To(BeNil())
	})
})
