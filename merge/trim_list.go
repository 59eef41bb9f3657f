package merge

import "container/list"

// trimList is the bidirectional counterpart of trimSlice: same ten-phase
// state machine, but driven by explicit node pointers and length counters
// instead of index arithmetic, since container/list has no constant-time
// distance or arbitrary-offset advance.
//
// sl/sr are the first nodes of the left/right runs; er is the right run's
// last node. On return, if resolved is true the range is fully merged.
// Otherwise nsl/nsr/ner/nll/nlr describe the shrunk, post-conditioned
// range for mergeList to continue from.
func trimList[T any](l *list.List, sl, sr, er *list.Element, ll, lr int, less func(a, b T) bool, hs hintSet) (resolved bool, nsl, nsr, ner *list.Element, nll, nlr int) {
	el := sr.Prev()

	sLeR := hs.startLeLeR
	sLeRp1 := hs.startLeRplus1
	eLeR := hs.endLeLeR
	eLm1LeR := hs.endLm1LeR

	phase := phaseStartLeLeR
	for {
		switch phase {
		case phaseStartLeLeR:
			v, known := bool3(sLeR)
			if !known {
				v = lessEqualList(less, valOf[T](sl), valOf[T](sr))
			}
			if v {
				var offset int
				sl, offset = smallestGreaterList(sl, ll, valOf[T](sr), less)
				ll -= offset
				if ll <= 1 {
					phase = phaseTC1
					continue
				}
			}
			sLeR = HintFalse
			if lr <= 1 {
				phase = phaseTC1R
				continue
			}
			phase = phaseEndLeLeR

		case phaseEndLeLeR:
			v, known := bool3(eLeR)
			if !known {
				v = lessEqualList(less, valOf[T](el), valOf[T](er))
			}
			if v {
				er, lr = largestLessList(sr, er, lr, valOf[T](el), less)
				if lr <= 1 {
					phase = phaseTC1R
					continue
				}
			}
			eLeR = HintFalse
			if ll <= 1 {
				phase = phaseTC1
				continue
			}
			phase = phaseStartLeRp1

		case phaseStartLeRp1:
			srPlus1 := sr.Next()
			v, known := bool3(sLeRp1)
			if !known {
				v = lessEqualList(less, valOf[T](sl), valOf[T](srPlus1))
			}
			if v {
				steps := 0
				for {
					sl.Value, sr.Value = sr.Value, sl.Value
					sl = sl.Next()
					steps++
					if !lessEqualList(less, valOf[T](sl), valOf[T](srPlus1)) {
						break
					}
				}
				ll -= steps
				if ll <= 1 {
					phase = phaseTC1
					continue
				}
			}
			sLeRp1 = HintFalse
			phase = phaseEndLm1LeR

		case phaseEndLm1LeR:
			elMinus1 := el.Prev()
			v, known := bool3(eLm1LeR)
			if !known {
				v = lessEqualList(less, valOf[T](elMinus1), valOf[T](er))
			}
			if v {
				steps := 0
				for {
					el.Value, er.Value = er.Value, el.Value
					er = er.Prev()
					steps++
					if !lessEqualList(less, valOf[T](elMinus1), valOf[T](er)) {
						break
					}
				}
				lr -= steps
				if lr <= 1 {
					phase = phaseTC1R
					continue
				}
			}
			eLm1LeR = HintFalse
			phase = phaseLengthDispatch

		case phaseLengthDispatch:
			if ll >= lr {
				if ll == lr {
					phase = phaseLengthEqual
				} else {
					phase = phaseShorterRight
				}
				continue
			}
			phase = phaseShorterLeft

		case phaseShorterLeft:
			symR := advanceN(el, ll)
			if less(valOf[T](symR), valOf[T](sl)) {
				for {
					swapRangeList(sl, sr, ll)
					sl = sr
					el = symR
					sr = symR.Next()
					lr -= ll
					if !(ll < lr) {
						break
					}
					symR = advanceN(el, ll)
					if !less(valOf[T](symR), valOf[T](sl)) {
						break
					}
				}
				sLeRp1 = HintUnknown
				sLeR = hintOf(lessEqualList(less, valOf[T](sl), valOf[T](sr)))
				switch {
				case sLeR == HintTrue:
					phase = phaseStartLeLeR
					continue
				case lr <= 1:
					phase = phaseTC1R
					continue
				case lessEqualList(less, valOf[T](er), valOf[T](sl)):
					phase = phaseTCEqualEnds
					continue
				default:
					sLeRp1 = hintOf(lessEqualList(less, valOf[T](sl), valOf[T](sr.Next())))
					if sLeRp1 == HintTrue {
						phase = phaseStartLeRp1
						continue
					}
					if ll >= lr {
						if ll == lr {
							phase = phaseLengthEqual
						} else {
							phase = phaseShorterRight
						}
						continue
					}
				}
			}
			return false, sl, sr, er, ll, lr

		case phaseShorterRight:
			symL := retreatN(sr, lr)
			if less(valOf[T](er), valOf[T](symL)) {
				for {
					swapRangeList(sr, symL, lr)
					er = retreatN(sr, 1)
					sr = symL
					el = symL.Prev()
					ll -= lr
					if !(lr < ll) {
						break
					}
					symL = retreatN(sr, lr)
					if !less(valOf[T](er), valOf[T](symL)) {
						break
					}
				}
				eLm1LeR = HintUnknown
				eLeR = hintOf(lessEqualList(less, valOf[T](el), valOf[T](er)))
				switch {
				case eLeR == HintTrue:
					phase = phaseEndLeLeR
					continue
				case ll <= 1:
					phase = phaseTC1
					continue
				case lessEqualList(less, valOf[T](er), valOf[T](sl)):
					phase = phaseTCEqualEnds
					continue
				default:
					eLm1LeR = hintOf(lessEqualList(less, valOf[T](el.Prev()), valOf[T](er)))
					if eLm1LeR == HintTrue {
						phase = phaseEndLm1LeR
						continue
					}
					if lr >= ll {
						if lr == ll {
							phase = phaseLengthEqual
						} else {
							phase = phaseShorterLeft
						}
						continue
					}
				}
			}
			return false, sl, sr, er, ll, lr

		case phaseLengthEqual:
			if lessEqualList(less, valOf[T](er), valOf[T](sl)) {
				phase = phaseTCEqualEnds
				continue
			}
			return false, sl, sr, er, ll, lr

		case phaseTC1:
			if lr == 1 {
				if less(valOf[T](sr), valOf[T](sl)) {
					sl.Value, sr.Value = sr.Value, sl.Value
				}
				return true, sl, sr, er, ll, lr
			}
			idx, _ := largestLessList(sr, er, lr, valOf[T](sl), less)
			rotateLeftBy1List(l, sl, idx.Next())
			return true, sl, sr, er, ll, lr

		case phaseTC1R:
			if ll == 1 {
				if less(valOf[T](sr), valOf[T](sl)) {
					sl.Value, sr.Value = sr.Value, sl.Value
				}
				return true, sl, sr, er, ll, lr
			}
			idx, _ := smallestGreaterList(sl, ll, valOf[T](er), less)
			rotateRightBy1List(l, idx, er)
			return true, sl, sr, er, ll, lr

		case phaseTCEqualEnds:
			equalEndsList[T](l, sl, sr, er, ll, lr, less)
			return true, sl, sr, er, ll, lr
		}
	}
}
