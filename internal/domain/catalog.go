package domain

// Item is a single catalog entry. Names are uppercase-normalized and unique
// within their category list only; lookups by name assume the kitchen keeps
// names unique in practice (see Ledger).
type Item struct {
	Name    string   `json:"name"`
	Par     *float64 `json:"par,omitempty"`     // target on-hand quantity
	Barcode string   `json:"barcode,omitempty"` // associated barcode, if scanned in
}

// CategoryList is an ordered, named list of items within a section.
type CategoryList struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// SectionData holds the ordered categories of one section.
type SectionData struct {
	Name       Section         `json:"name"`
	Categories []*CategoryList `json:"categories"`
}

// Catalog is the full hierarchical item catalog: section -> category -> items.
// It is a plain value object; all mutation happens through its methods and the
// caller is responsible for persisting the result.
type Catalog struct {
	Sections []*SectionData `json:"sections"`
}

// NewCatalog creates an empty catalog carrying the fixed section set and the
// reserved temporary category.
func NewCatalog() *Catalog {
	c := &Catalog{}
	for _, name := range Sections() {
		c.Sections = append(c.Sections, &SectionData{Name: name})
	}
	c.Section(SectionOther).ensureCategory(TemporaryCategory)
	return c
}

// Section returns the named section, or nil if absent.
func (c *Catalog) Section(name Section) *SectionData {
	for _, s := range c.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Normalize repairs structural invariants after loading from storage: all four
// sections present in order, temporary category present under OTHER.
func (c *Catalog) Normalize() {
	bySections := make(map[Section]*SectionData, len(c.Sections))
	for _, s := range c.Sections {
		bySections[s.Name] = s
	}
	ordered := make([]*SectionData, 0, len(Sections()))
	for _, name := range Sections() {
		s := bySections[name]
		if s == nil {
			s = &SectionData{Name: name}
		}
		ordered = append(ordered, s)
	}
	c.Sections = ordered
	c.Section(SectionOther).ensureCategory(TemporaryCategory)
}

// Category returns the named category list within the section, or nil.
func (s *SectionData) Category(name string) *CategoryList {
	for _, cat := range s.Categories {
		if cat.Name == name {
			return cat
		}
	}
	return nil
}

func (s *SectionData) ensureCategory(name string) *CategoryList {
	if cat := s.Category(name); cat != nil {
		return cat
	}
	cat := &CategoryList{Name: name}
	s.Categories = append(s.Categories, cat)
	return cat
}

// ContainsName reports whether any item anywhere in the catalog has this name.
func (c *Catalog) ContainsName(name string) bool {
	_, _, _, found := c.FindItem(name)
	return found
}

// FindItem locates the first item with the given name, returning the item and
// its location. Item names are treated as identifiers here even though
// uniqueness is only enforced per category; the first match wins.
func (c *Catalog) FindItem(name string) (item *Item, section Section, category string, found bool) {
	for _, s := range c.Sections {
		for _, cat := range s.Categories {
			for i := range cat.Items {
				if cat.Items[i].Name == name {
					return &cat.Items[i], s.Name, cat.Name, true
				}
			}
		}
	}
	return nil, "", "", false
}

// InsertIfAbsent appends the item to section/category unless that category
// already contains an item of the same name. This is the single
// duplicate-suppressing insert shared by temporary-item creation, promotion,
// and barcode-driven creation. When autoCreate is false and the category does
// not exist, nothing is inserted.
func (c *Catalog) InsertIfAbsent(section Section, category string, item Item, autoCreate bool) bool {
	s := c.Section(section)
	if s == nil {
		return false
	}
	cat := s.Category(category)
	if cat == nil {
		if !autoCreate {
			return false
		}
		cat = s.ensureCategory(category)
	}
	for i := range cat.Items {
		if cat.Items[i].Name == item.Name {
			return false
		}
	}
	cat.Items = append(cat.Items, item)
	return true
}

// AddTemporary inserts a bare item into OTHER/"TEMPORARY ITEMS" unless the
// name already exists anywhere in the catalog. Reports whether the catalog
// changed.
func (c *Catalog) AddTemporary(name string) bool {
	if c.ContainsName(name) {
		return false
	}
	return c.InsertIfAbsent(SectionOther, TemporaryCategory, Item{Name: name}, true)
}

// Promote moves a temporary item into the target section/category. The item
// is removed from the temporary list by name; insertion into the target is
// duplicate-suppressing and auto-creates the category. Reports whether the
// item was found in the temporary list.
func (c *Catalog) Promote(name string, section Section, category string) bool {
	temp := c.Section(SectionOther).Category(TemporaryCategory)
	removed := false
	for i := range temp.Items {
		if temp.Items[i].Name == name {
			temp.Items = append(temp.Items[:i], temp.Items[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return false
	}
	c.InsertIfAbsent(section, category, Item{Name: name}, true)
	return true
}

// RemoveAt deletes the item at the positional index within section/category.
func (c *Catalog) RemoveAt(section Section, category string, index int) bool {
	s := c.Section(section)
	if s == nil {
		return false
	}
	cat := s.Category(category)
	if cat == nil || index < 0 || index >= len(cat.Items) {
		return false
	}
	cat.Items = append(cat.Items[:index], cat.Items[index+1:]...)
	return true
}

// SetParAt sets or clears the par of the item at the positional index. A nil
// par clears the target level.
func (c *Catalog) SetParAt(section Section, category string, index int, par *float64) bool {
	s := c.Section(section)
	if s == nil {
		return false
	}
	cat := s.Category(category)
	if cat == nil || index < 0 || index >= len(cat.Items) {
		return false
	}
	cat.Items[index].Par = par
	return true
}
