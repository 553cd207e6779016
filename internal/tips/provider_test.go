package tips_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openexp/hubconfig/internal/tips"
)

var _ = Describe("Provider", func() {
	var provider *tips.Provider

	BeforeEach(func() {
		var err error
		provider, err = tips.New("en")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("should discover the embedded locales", func() {
			Expect(provider.Locales()).To(ContainElements("en", "ar"))
		})

		It("should fail when the default locale has no resource", func() {
			_, err := tips.New("tlh")
			Expect(err).To(HaveOccurred())
		})

		It("should record the default locale", func() {
			Expect(provider.DefaultLocale()).To(Equal("en"))
		})
	})

	Describe("Tips", func() {
		It("should return the Arabic list in exact file order", func() {
			Expect(provider.Tips("ar")).To(Equal([]string{
				"يمكنك تعطيل هذه النصائح من تفضيلات التطبيق.",
				"تُسجَّل أحداث لوحة المفاتيح بوقت ضغط المفتاح لا بوقت تحديث الشاشة.",
				"اضبط طول مخزن الأحداث لكل جهاز إذا كانت التجربة تولد دفعات من الأحداث.",
				"الأجهزة غير المفعّلة يتم تجاوزها بالكامل عند بدء الجلسة.",
				"استخدم قائمة أنواع الأحداث المراقبة لتسجيل ما يحتاجه تحليلك فقط.",
				"يمكن التحكم في بث الأحداث وحفظها بشكل مستقل لكل جهاز.",
				"وثيقة الإعدادات تحتاج فقط إلى المفاتيح التي تريد تغييرها، والبقية تأخذ القيم الافتراضية.",
				"أفرغ مخازن الأحداث بانتظام: عند الامتلاء تُحذف الأحداث الأقدم أولاً.",
			}))
		})

		It("should return the same list on every call", func() {
			Expect(provider.Tips("ar")).To(Equal(provider.Tips("ar")))
		})

		It("should not expose internal state through the returned slice", func() {
			first := provider.Tips("en")
			first[0] = "mutated"
			Expect(provider.Tips("en")[0]).NotTo(Equal("mutated"))
		})

		It("should resolve a region variant to its base language", func() {
			Expect(provider.Tips("ar-EG")).To(Equal(provider.Tips("ar")))
		})

		It("should fall back to the default locale for an unknown locale", func() {
			Expect(provider.Tips("tlh")).To(Equal(provider.Tips("en")))
		})

		It("should fall back to the default locale for a malformed locale", func() {
			Expect(provider.Tips("not a locale!")).To(Equal(provider.Tips("en")))
		})

		It("should skip comments and blank lines in the resource", func() {
			for _, tip := range provider.Tips("en") {
				Expect(tip).NotTo(BeEmpty())
				Expect(tip).NotTo(HavePrefix("#"))
			}
		})
	})
})
