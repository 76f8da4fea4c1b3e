package document

// CloneRun copies a run including its link value so that later edits to the
// clone never alias the original.
func CloneRun(r Run) Run {
	clone := r
	if r.Link != nil {
		link := *r.Link
		clone.Link = &link
	}
	return clone
}

func CloneBlock(b *Block) *Block {
	clone := *b
	if b.List != nil {
		list := *b.List
		clone.List = &list
	}
	clone.Runs = make([]Run, 0, len(b.Runs))
	for _, r := range b.Runs {
		clone.Runs = append(clone.Runs, CloneRun(r))
	}
	return &clone
}

func CloneDocument(d *Document) *Document {
	clone := &Document{Blocks: make([]*Block, 0, len(d.Blocks))}
	for _, b := range d.Blocks {
		clone.Blocks = append(clone.Blocks, CloneBlock(b))
	}
	return clone
}
