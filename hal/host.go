package hal

type hostHAL struct {
	fb  *MemFramebuffer
	kbd *hostKeyboard
	t   *hostTime
}

// New returns a host HAL with a w x h framebuffer.
func New(w, h int) HAL {
	return newHost(w, h)
}

func newHost(w, h int) *hostHAL {
	return &hostHAL{
		fb:  NewFramebuffer(w, h),
		kbd: newHostKeyboard(),
		t:   newHostTime(),
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb Framebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
