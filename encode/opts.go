package encode

type EncodeOption func(*EncState)

func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeDitto controls whether a table cell equal to the cell above is
// written as '_'. The default is true.
func EncodeDitto(v bool) EncodeOption {
	return func(es *EncState) { es.ditto = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// MaxDepth bounds record nesting.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}
