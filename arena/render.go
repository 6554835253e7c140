package arena

// RenderSink draws items. The arena itself emits no pixels.
type RenderSink interface {
	DrawItem(it Item)
}

// Draw hands every item to the sink in storage order, so later items draw
// on top of earlier ones.
func (a *Arena) Draw(sink RenderSink) {
	for _, e := range a.order {
		sink.DrawItem(a.view(e))
	}
}
