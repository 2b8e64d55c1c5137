package s377m

// Check runs the rules that span records, which no single record parser
// can see: partition ordering, the pointer chain between packs, declared
// region byte counts against the records actually found, and random index
// coverage. Every violation is reported rather than stopping at the
// first; a clean file returns nil.
//
// Parsed files carry real offsets and length field widths, so all the
// checks apply. A file assembled in memory is checked against the offsets
// its frames hold, zero until it has been written and read back.
func (m *MXF) Check() []error {
	var problems []error

	if len(m.Partitions) == 0 {
		return []error{structuralErr(Frame{}, "no partition packs in the file")}
	}

	var footer *Partition
	for i, part := range m.Partitions {
		pack := part.Pack

		switch {
		case i == 0 && pack.Kind != Header:
			problems = append(problems, structuralErr(pack.Frame, "file opens with a %s partition, wanted header", pack.Kind))
		case i > 0 && pack.Kind == Header:
			problems = append(problems, structuralErr(pack.Frame, "second header partition in one file"))
		}

		if pack.Kind == Footer {
			if footer != nil {
				problems = append(problems, structuralErr(pack.Frame, "two footer partitions in one file"))
				continue
			}
			if i != len(m.Partitions)-1 {
				problems = append(problems, structuralErr(pack.Frame, "footer partition before the end of the file"))
			}
			footer = pack
		}
	}

	for i, part := range m.Partitions {
		pack := part.Pack

		if pack.ThisPartition != uint64(pack.Offset) {
			problems = append(problems, structuralErr(pack.Frame,
				"pack declares this partition at byte %d, it sits at %d", pack.ThisPartition, pack.Offset))
		}
		if i > 0 {
			prev := m.Partitions[i-1].Pack
			if pack.PreviousPartition != uint64(prev.Offset) {
				problems = append(problems, structuralErr(pack.Frame,
					"pack points back to byte %d, the previous partition sits at %d", pack.PreviousPartition, prev.Offset))
			}
		}
		if footer != nil && pack.FooterPartition != 0 && pack.FooterPartition != uint64(footer.Offset) {
			problems = append(problems, structuralErr(pack.Frame,
				"pack points at a footer at byte %d, the footer sits at %d", pack.FooterPartition, footer.Offset))
		}

		metaBytes := 0
		for _, rec := range part.Metadata {
			metaBytes += rec.Framing().TotalLength()
		}
		if metaBytes != int(pack.HeaderByteCount) {
			problems = append(problems, structuralErr(pack.Frame,
				"metadata region of %d bytes, the pack declares %d", metaBytes, pack.HeaderByteCount))
		}

		indexBytes := 0
		for _, seg := range part.Index {
			indexBytes += seg.TotalLength()
		}
		if indexBytes != int(pack.IndexByteCount) {
			problems = append(problems, structuralErr(pack.Frame,
				"index region of %d bytes, the pack declares %d", indexBytes, pack.IndexByteCount))
		}

		if pack.Kind == GenericStream {
			if pack.HeaderByteCount != 0 {
				problems = append(problems, structuralErr(pack.Frame,
					"generic stream partition carries %d metadata bytes", pack.HeaderByteCount))
			}
			if pack.IndexByteCount != 0 || pack.IndexSID != 0 {
				problems = append(problems, structuralErr(pack.Frame, "generic stream partition carries an index table"))
			}
		}
	}

	if m.RIP != nil {
		problems = append(problems, m.checkRIP()...)
	}

	return problems
}

// checkRIP holds the random index rules: the pack closes the file and its
// entries walk every partition in order with matching body sids.
func (m *MXF) checkRIP() []error {
	var problems []error

	if n := len(m.Records); n > 0 {
		if _, ok := m.Records[n-1].(*RandomIndex); !ok {
			problems = append(problems, structuralErr(m.RIP.Frame, "random index pack is not the final record"))
		}
	}

	if len(m.RIP.Entries) != len(m.Partitions) {
		return append(problems, structuralErr(m.RIP.Frame,
			"random index lists %d partitions, the file has %d", len(m.RIP.Entries), len(m.Partitions)))
	}

	for i, entry := range m.RIP.Entries {
		pack := m.Partitions[i].Pack
		if entry.Offset != uint64(pack.Offset) {
			problems = append(problems, structuralErr(m.RIP.Frame,
				"random index entry %d points at byte %d, the %s partition sits at %d", i, entry.Offset, pack.Kind, pack.Offset))
			continue
		}
		if entry.BodySID != pack.BodySID {
			problems = append(problems, structuralErr(m.RIP.Frame,
				"random index entry %d carries body sid %d, the partition declares %d", i, entry.BodySID, pack.BodySID))
		}
	}

	return problems
}
