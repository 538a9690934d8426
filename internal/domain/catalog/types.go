package catalog

type Category string

const (
	CategoryBase     Category = "base"
	CategoryFruit    Category = "fruit"
	CategoryBeverage Category = "beverage"
	CategoryHerb     Category = "herb"
	CategoryOther    Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBase, CategoryFruit, CategoryBeverage, CategoryHerb, CategoryOther:
		return true
	default:
		return false
	}
}
