package content

import "errors"

var (
	ErrPortfolioNotFound = errors.New("portfolio item not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrImageNotFound     = errors.New("product image not found")
	ErrSlugTaken         = errors.New("slug already taken")
	ErrSlugUnderivable   = errors.New("cannot derive slug from empty names")
)
