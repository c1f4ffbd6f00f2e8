package card

// Card 支付卡，属于某个用户
// 说明：卡号和安全码按原样存储和返回，不做脱敏
type Card struct {
	ID             uint
	Name           string
	CardNumber     string
	ExpirationDate string
	SecurityCode   string
	ZipCode        string
	UserID         uint
}
