package domain

// MaxGameNameLength is the longest accepted game name, in characters.
const MaxGameNameLength = 50

// MinGamePrice and MaxGamePrice bound a game's price, both inclusive.
const (
	MinGamePrice = 1
	MaxGamePrice = 100
)

// MaxCouponCodeLength is the longest accepted coupon code, in characters.
const MaxCouponCodeLength = 50

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"
