package factory

// Confectioner declares the factory method. Each shop decides which candy
// it makes; Sell only depends on the interface.
type Confectioner interface {
	MakeCandy() Candy
}

// ChocolatierShop makes chocolate.
type ChocolatierShop struct{}

func (ChocolatierShop) MakeCandy() Candy { return chocolate{} }

// GummyShop makes gummies.
type GummyShop struct {
	SugarFree bool
}

func (s GummyShop) MakeCandy() Candy { return gummy{sugarFree: s.SugarFree} }

// Box is what a shop sells.
type Box struct {
	Candies  []Candy
	Calories int
}

// Sell fills a box with n candies made by the shop's factory method.
func Sell(c Confectioner, n int) Box {
	var box Box
	for range max(n, 0) {
		candy := c.MakeCandy()
		box.Candies = append(box.Candies, candy)
		box.Calories += candy.Calories()
	}
	return box
}
