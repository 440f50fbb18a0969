package timeoff_test

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/timeoff"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseInput", func() {
	valid := func() url.Values {
		return url.Values{
			"employee_id": {"1"},
			"start_date":  {"2024-05-01"},
			"end_date":    {"2024-05-03"},
		}
	}

	It("defaults category and status", func() {
		in, errs := timeoff.ParseInput(valid())
		Expect(errs).To(BeEmpty())
		Expect(in.Category).To(Equal(timeoff.CategoryPTO))
		Expect(in.Status).To(Equal(timeoff.StatusPending))
	})

	It("accepts a single-day request", func() {
		v := valid()
		v.Set("end_date", "2024-05-01")
		_, errs := timeoff.ParseInput(v)
		Expect(errs).To(BeEmpty())
	})

	It("rejects an end date before the start date", func() {
		v := valid()
		v.Set("end_date", "2024-04-30")
		_, errs := timeoff.ParseInput(v)
		Expect(errs.Messages()).To(ConsistOf("End date must be after start date."))
	})

	It("reports unparseable dates once", func() {
		v := valid()
		v.Set("start_date", "tomorrow")
		v.Del("end_date")
		_, errs := timeoff.ParseInput(v)
		Expect(errs.Messages()).To(ConsistOf("Invalid dates."))
	})

	It("rejects an unknown category", func() {
		v := valid()
		v.Set("category", "sabbatical")
		_, errs := timeoff.ParseInput(v)
		Expect(errs.Has("category")).To(BeTrue())
	})
})
