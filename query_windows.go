package dieseldx

func (h *QueryHeap) Release()     { release(&h.inner) }
func (h *QueryHeap) IsNull() bool { return h.inner == nil }

func (h *QueryHeap) Clone() *QueryHeap {
	return &QueryHeap{inner: addRef(h.inner)}
}
