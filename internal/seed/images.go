package seed

import (
	"fmt"
	"strings"
)

// keywordImages maps product-name keywords to curated Unsplash photo IDs,
// most specific entries first. The first keyword found in the lowercased
// product name wins.
var keywordImages = []struct {
	keywords []string
	photoID  string
}{
	{[]string{"denim jacket", "jean jacket"}, "1542272604-787c3835535d"},
	{[]string{"t-shirt", "tshirt", "tee shirt"}, "1521572163474-6864f9cf17ab"},
	{[]string{"macbook"}, "1517336714731-489689fd1ca8"},
	{[]string{"laptop", "notebook computer"}, "1496181133206-80ce9b88a853"},
	{[]string{"iphone", "smartphone", "mobile phone"}, "1592750475338-74b7b21085ab"},
	{[]string{"tablet", "ipad"}, "1517336714731-489689fd1ca8"},
	{[]string{"headphones", "earphones", "earbuds"}, "1505740420928-5e560c06d30e"},
	{[]string{"robot vacuum", "vacuum"}, "1558317374-067fb5f30001"},
	{[]string{"espresso machine", "espresso coffee", "coffee machine", "coffee maker"}, "1514228742587-6b1558fcca3d"},
	{[]string{"clean code", "code book"}, "1544716278-ca5e3f4abd8c"},
	{[]string{"programming", "devops", "software book"}, "1544716278-ca5e3f4abd8c"},
	{[]string{"book", "handbook", "guide", "manual"}, "1544716278-ca5e3f4abd8c"},
}

const fallbackPhotoID = "1441986300917-64674bd600d8"

// ImageURLFor returns a stock product photo URL matched on the product name.
// An unmatched name gets a generic storefront photo rather than no image.
func ImageURLFor(productName string) string {
	name := strings.ToLower(productName)
	photoID := fallbackPhotoID
	for _, entry := range keywordImages {
		if containsAny(name, entry.keywords) {
			photoID = entry.photoID
			break
		}
	}
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?w=800&h=600&fit=crop&q=80", photoID)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
