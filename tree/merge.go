package tree

// Merge merges src into dst recursively. Where both hold a mapping under the
// same key the two are merged; otherwise the value from src replaces the one
// in dst. Keys only in dst are kept. Values taken from src are copied.
// A nil dst is left untouched.
func Merge(dst, src *Mapping) {
	if dst == nil {
		return
	}

	src.Range(func(key string, incoming any) bool {
		existing, ok := dst.Lookup(key)
		if ok {
			dstChild, dstIsMapping := existing.(*Mapping)
			srcChild, srcIsMapping := incoming.(*Mapping)

			if dstIsMapping && srcIsMapping && dstChild != nil {
				Merge(dstChild, srcChild)

				return true
			}
		}

		dst.Put(key, cloneValue(incoming))

		return true
	})
}
