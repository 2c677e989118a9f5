package linsys

// bufferPool double-buffers successive generations so a bounded run of
// rewrites reuses two backing arrays instead of allocating per step. The
// active buffer holds the current generation, the idle one receives the
// next, then the two swap roles.
type bufferPool struct {
	active   []Symbol
	inactive []Symbol
	swap     bool
}

func newBufferPool(capacity int) *bufferPool {
	if capacity < 1 {
		capacity = 1
	}
	return &bufferPool{
		active:   make([]Symbol, 0, capacity),
		inactive: make([]Symbol, 0, capacity),
	}
}

func (p *bufferPool) readAll() []Symbol {
	if p.swap {
		return p.inactive
	}
	return p.active
}

func (p *bufferPool) appendString(s string) {
	buf := p.readAll()
	for _, r := range s {
		buf = append(buf, Symbol(r))
	}
	p.store(buf)
}

func (p *bufferPool) store(buf []Symbol) {
	if p.swap {
		p.inactive = buf
	} else {
		p.active = buf
	}
}

// rewrite produces the next generation into the idle buffer, then swaps.
func (p *bufferPool) rewrite(apply func(Symbol) string) {
	src := p.readAll()
	dst := p.idle()[:0]
	for _, sym := range src {
		for _, r := range apply(sym) {
			dst = append(dst, Symbol(r))
		}
	}
	p.storeIdle(dst)
	p.swap = !p.swap
}

func (p *bufferPool) idle() []Symbol {
	if p.swap {
		return p.active
	}
	return p.inactive
}

func (p *bufferPool) storeIdle(buf []Symbol) {
	if p.swap {
		p.active = buf
	} else {
		p.inactive = buf
	}
}

func (p *bufferPool) String() string {
	buf := p.readAll()
	runes := make([]rune, len(buf))
	for i, sym := range buf {
		runes[i] = rune(sym)
	}
	return string(runes)
}
