package merge

// trimPhase names one node of the trim state machine. Modeled as an
// explicit enum dispatched in a loop: nested conditionals or recursion
// would obscure which post-condition each phase establishes.
type trimPhase int8

const (
	phaseStartLeLeR trimPhase = iota // P1
	phaseEndLeLeR                    // P2
	phaseStartLeRp1                  // P3
	phaseEndLm1LeR                   // P4
	phaseLengthDispatch              // P5
	phaseShorterLeft                 // P6
	phaseShorterRight                // P7
	phaseLengthEqual                 // P8
	phaseTC1                         // length_left == 1
	phaseTC1R                        // length_right == 1
	phaseTCEqualEnds                 // equal-endpoints resolver
)

// trimSlice runs the trim pre-processing pass over s[sl:oe] with boundary
// sr. Entry contract (caller's responsibility): sl < sr < oe, both
// sub-ranges individually sorted under less, and !lessEqual(s[sr-1], s[sr])
// (the "already merged" trivial case has been rejected).
//
// On return, if resolved is true the range s[sl:oe] is already fully
// merged and divide must not run. Otherwise it returns shrunk bounds
// nsl, nsr, noe satisfying the trim pass's strengthened post-conditions.
func trimSlice[T any](s []T, sl, sr, oe int, less func(a, b T) bool, hs hintSet) (resolved bool, nsl, nsr, noe int) {
	el := sr - 1
	er := oe - 1
	ll := sr - sl
	lr := oe - sr

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
				v = lessEqualSlice(less, s[sl], s[sr])
			}
			if v {
				sl = smallestGreaterSlice(s, sl, el, s[sr], less)
				ll = sr - sl
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
				v = lessEqualSlice(less, s[el], s[er])
			}
			if v {
				er = largestLessSlice(s, sr, er, s[el], less)
				oe = er + 1
				lr = er - sr + 1
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
			v, known := bool3(sLeRp1)
			if !known {
				v = lessEqualSlice(less, s[sl], s[sr+1])
			}
			if v {
				for {
					s[sl], s[sr] = s[sr], s[sl]
					sl++
					if !lessEqualSlice(less, s[sl], s[sr+1]) {
						break
					}
				}
				ll = sr - sl
				if ll <= 1 {
					phase = phaseTC1
					continue
				}
			}
			sLeRp1 = HintFalse
			phase = phaseEndLm1LeR

		case phaseEndLm1LeR:
			v, known := bool3(eLm1LeR)
			if !known {
				v = lessEqualSlice(less, s[el-1], s[er])
			}
			if v {
				for {
					s[el], s[er] = s[er], s[el]
					er--
					if !lessEqualSlice(less, s[el-1], s[er]) {
						break
					}
				}
				lr = er - sr + 1
				oe = er + 1
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
			symR := el + ll
			if less(s[symR], s[sl]) {
				for {
					swapRangeSlice(s, sl, sr, ll)
					sl = sr
					el = symR
					sr = symR + 1
					lr -= ll
					isLeftShorter := ll < lr
					if !isLeftShorter {
						break
					}
					symR = el + ll
					if !less(s[symR], s[sl]) {
						break
					}
				}
				sLeRp1 = HintUnknown
				sLeR = hintOf(lessEqualSlice(less, s[sl], s[sr]))
				switch {
				case sLeR == HintTrue:
					phase = phaseStartLeLeR
					continue
				case lr <= 1:
					phase = phaseTC1R
					continue
				case lessEqualSlice(less, s[er], s[sl]):
					phase = phaseTCEqualEnds
					continue
				default:
					sLeRp1 = hintOf(lessEqualSlice(less, s[sl], s[sr+1]))
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
			return false, sl, sr, oe

		case phaseShorterRight:
			symL := sr - lr
			if less(s[er], s[symL]) {
				for {
					swapRangeSlice(s, sr, symL, lr)
					oe = sr
					er = oe - 1
					sr = symL
					el = symL - 1
					ll -= lr
					isRightShorter := lr < ll
					if !isRightShorter {
						break
					}
					symL = sr - lr
					if !less(s[er], s[symL]) {
						break
					}
				}
				eLm1LeR = HintUnknown
				eLeR = hintOf(lessEqualSlice(less, s[el], s[er]))
				switch {
				case eLeR == HintTrue:
					phase = phaseEndLeLeR
					continue
				case ll <= 1:
					phase = phaseTC1
					continue
				case lessEqualSlice(less, s[er], s[sl]):
					phase = phaseTCEqualEnds
					continue
				default:
					eLm1LeR = hintOf(lessEqualSlice(less, s[el-1], s[er]))
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
			return false, sl, sr, oe

		case phaseLengthEqual:
			if lessEqualSlice(less, s[er], s[sl]) {
				phase = phaseTCEqualEnds
				continue
			}
			return false, sl, sr, oe

		case phaseTC1:
			if lr == 1 {
				if less(s[sr], s[sl]) {
					s[sl], s[sr] = s[sr], s[sl]
				}
				return true, sl, sr, oe
			}
			idx := largestLessSlice(s, sr, er, s[sl], less)
			rotateLeftBy1Slice(s, sl, idx+1)
			return true, sl, sr, oe

		case phaseTC1R:
			if ll == 1 {
				if less(s[sr], s[sl]) {
					s[sl], s[sr] = s[sr], s[sl]
				}
				return true, sl, sr, oe
			}
			idx := smallestGreaterSlice(s, sl, el, s[er], less)
			rotateRightBy1Slice(s, idx, er+1)
			return true, sl, sr, oe

		case phaseTCEqualEnds:
			equalEndsSlice(s, sl, sr, oe, less)
			return true, sl, sr, oe
		}
	}
}
