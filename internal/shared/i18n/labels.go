package i18n

// Message keys used by the cart and order packages
const (
	KeyPriceOnRequest = "price_on_request"
	KeyOrderHeader    = "order.header"
	KeyOrderTotal     = "order.total"
	KeyOrderBranch    = "order.branch"
	KeyOrderLocation  = "order.location"
	KeyOrderNumber    = "order.number"
	KeyOrderEach      = "order.each"
	KeyInquiryGreet   = "inquiry.greeting"
	KeyInquiryPrompt  = "inquiry.prompt"
	KeyInquiryBranch  = "inquiry.branch"
)

var labels = map[Language]map[string]string{
	Arabic: {
		KeyPriceOnRequest: "السعر عند الطلب",
		KeyOrderHeader:    "طلب جديد",
		KeyOrderTotal:     "الإجمالي",
		KeyOrderBranch:    "الفرع",
		KeyOrderLocation:  "الموقع",
		KeyOrderNumber:    "رقم الطلب",
		KeyOrderEach:      "للواحدة",
		KeyInquiryGreet:   "مرحباً 🌿",
		KeyInquiryPrompt:  "أود الاستفسار عن سعر",
		KeyInquiryBranch:  "الفرع",
	},
	English: {
		KeyPriceOnRequest: "Price on request",
		KeyOrderHeader:    "New Order",
		KeyOrderTotal:     "Total",
		KeyOrderBranch:    "Branch",
		KeyOrderLocation:  "Location",
		KeyOrderNumber:    "Order Number",
		KeyOrderEach:      "each",
		KeyInquiryGreet:   "Hi 🌿",
		KeyInquiryPrompt:  "I'd like to inquire about the price of",
		KeyInquiryBranch:  "Branch",
	},
}

// T returns the label for key in l, falling back to Arabic and then the key
func (l Language) T(key string) string {
	if m, ok := labels[l]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := labels[Default][key]; ok {
		return v
	}
	return key
}
