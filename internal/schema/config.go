package schema

// Config is the root of the expected structure: a mapping of well-known
// directory [Kind] to the [Item] describing its contents. A [Kind] without an
// [Item] is not configured, verifying it is a configuration error.
type Config struct {
	items map[Kind]*Item
}

// NewConfig returns a pointer to a new, empty [Config].
func NewConfig() *Config {
	return &Config{
		items: make(map[Kind]*Item),
	}
}

// Get returns the [Item] for a [Kind] and whether it is configured.
func (c *Config) Get(kind Kind) (*Item, bool) {
	if c == nil {
		return nil, false
	}

	item, ok := c.items[kind]

	return item, ok && item != nil
}

// Set configures a [Kind] with an [Item]. A nil [Item] removes the [Kind].
// It is meant for building a [Config] before it is handed to a [Store].
func (c *Config) Set(kind Kind, item *Item) {
	if item == nil {
		delete(c.items, kind)

		return
	}
	if c.items == nil {
		c.items = make(map[Kind]*Item)
	}
	c.items[kind] = item
}

// Configured returns all configured [Kind] in their declaration order.
func (c *Config) Configured() []Kind {
	var kinds []Kind

	if c == nil {
		return kinds
	}

	for _, k := range Kinds() {
		if _, ok := c.Get(k); ok {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// Len returns the number of configured [Kind].
func (c *Config) Len() int {
	if c == nil {
		return 0
	}

	return len(c.items)
}
