package svgpath

import "strconv"

// Point is a 2D point in drawing or world space (value type).
type Point struct {
	X, Y float64
}

// Polyline is an ordered run of points flattened from path commands.
// A closed outline carries its start point again at the end (emitted by Z).
type Polyline []Point

// Curve flattening resolution: fixed uniform parameter steps per segment.
const (
	cubicSteps = 8
	quadSteps  = 6
)

// ParsePath flattens an SVG path `d` command string into a Polyline.
// Supported commands: M, L, H, V, C, Q, S, T, Z (upper = absolute,
// lower = relative). Command groups with insufficient numeric arguments
// are skipped without emitting a partial point.
func ParsePath(d string) Polyline {
	p := &parser{d: d}
	p.run()
	return p.out
}

// parser holds the mutable command-stream state: current position,
// subpath start, and the previous control point for S/T reflection.
type parser struct {
	d   string
	pos int

	cur       Point
	start     Point
	prevCp    Point
	hasPrevCp bool

	out Polyline
}

func (p *parser) run() {
	var cmd byte
	for {
		p.skipSeparators()
		if p.pos >= len(p.d) {
			return
		}
		c := p.d[p.pos]
		if isCommand(c) {
			cmd = c
			p.pos++
			if c == 'Z' || c == 'z' {
				p.closePath()
				cmd = 0
			}
			continue
		}
		if cmd == 0 {
			// Stray token before any command.
			p.pos++
			continue
		}
		if !p.applyGroup(cmd) {
			// Short argument group: drop it, resume at the next command.
			continue
		}
		// Extra coordinate pairs after a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

// applyGroup reads one argument group for cmd and emits its points.
// Returns false when the numeric arguments ran short.
func (p *parser) applyGroup(cmd byte) bool {
	abs := cmd >= 'A' && cmd <= 'Z'
	switch cmd {
	case 'M', 'm':
		x, y, ok := p.nextPair()
		if !ok {
			return false
		}
		if !abs {
			x += p.cur.X
			y += p.cur.Y
		}
		p.cur = Point{x, y}
		p.start = p.cur
		p.hasPrevCp = false
		p.out = append(p.out, p.cur)

	case 'L', 'l':
		x, y, ok := p.nextPair()
		if !ok {
			return false
		}
		if !abs {
			x += p.cur.X
			y += p.cur.Y
		}
		p.lineTo(Point{x, y})

	case 'H', 'h':
		x, ok := p.nextNumber()
		if !ok {
			return false
		}
		if !abs {
			x += p.cur.X
		}
		p.lineTo(Point{x, p.cur.Y})

	case 'V', 'v':
		y, ok := p.nextNumber()
		if !ok {
			return false
		}
		if !abs {
			y += p.cur.Y
		}
		p.lineTo(Point{p.cur.X, y})

	case 'C', 'c':
		x1, y1, ok1 := p.nextPair()
		x2, y2, ok2 := p.nextPair()
		x, y, ok3 := p.nextPair()
		if !ok1 || !ok2 || !ok3 {
			return false
		}
		if !abs {
			x1 += p.cur.X
			y1 += p.cur.Y
			x2 += p.cur.X
			y2 += p.cur.Y
			x += p.cur.X
			y += p.cur.Y
		}
		p.cubicTo(Point{x1, y1}, Point{x2, y2}, Point{x, y})

	case 'S', 's':
		x2, y2, ok1 := p.nextPair()
		x, y, ok2 := p.nextPair()
		if !ok1 || !ok2 {
			return false
		}
		if !abs {
			x2 += p.cur.X
			y2 += p.cur.Y
			x += p.cur.X
			y += p.cur.Y
		}
		p.cubicTo(p.reflectedCp(), Point{x2, y2}, Point{x, y})

	case 'Q', 'q':
		x1, y1, ok1 := p.nextPair()
		x, y, ok2 := p.nextPair()
		if !ok1 || !ok2 {
			return false
		}
		if !abs {
			x1 += p.cur.X
			y1 += p.cur.Y
			x += p.cur.X
			y += p.cur.Y
		}
		p.quadTo(Point{x1, y1}, Point{x, y})

	case 'T', 't':
		x, y, ok := p.nextPair()
		if !ok {
			return false
		}
		if !abs {
			x += p.cur.X
			y += p.cur.Y
		}
		p.quadTo(p.reflectedCp(), Point{x, y})

	default:
		// Unsupported command (A, ...): swallow its numbers.
		if _, ok := p.nextNumber(); !ok {
			return false
		}
	}
	return true
}

func (p *parser) lineTo(end Point) {
	p.cur = end
	p.hasPrevCp = false
	p.out = append(p.out, end)
}

// cubicTo samples the cubic Bézier from cur through cp1, cp2 to end at
// uniform parameter steps and records cp2 for smooth continuation.
func (p *parser) cubicTo(cp1, cp2, end Point) {
	p0 := p.cur
	for k := 1; k <= cubicSteps; k++ {
		t := float64(k) / cubicSteps
		u := 1 - t
		b0 := u * u * u
		b1 := 3 * u * u * t
		b2 := 3 * u * t * t
		b3 := t * t * t
		p.out = append(p.out, Point{
			X: b0*p0.X + b1*cp1.X + b2*cp2.X + b3*end.X,
			Y: b0*p0.Y + b1*cp1.Y + b2*cp2.Y + b3*end.Y,
		})
	}
	p.cur = end
	p.prevCp = cp2
	p.hasPrevCp = true
}

func (p *parser) quadTo(cp, end Point) {
	p0 := p.cur
	for k := 1; k <= quadSteps; k++ {
		t := float64(k) / quadSteps
		u := 1 - t
		b0 := u * u
		b1 := 2 * u * t
		b2 := t * t
		p.out = append(p.out, Point{
			X: b0*p0.X + b1*cp.X + b2*end.X,
			Y: b0*p0.Y + b1*cp.Y + b2*end.Y,
		})
	}
	p.cur = end
	p.prevCp = cp
	p.hasPrevCp = true
}

// reflectedCp mirrors the previous control point through the current
// position. Without a previous curve the reflection collapses to the
// current position (zero-length reflection).
func (p *parser) reflectedCp() Point {
	if !p.hasPrevCp {
		return p.cur
	}
	return Point{
		X: 2*p.cur.X - p.prevCp.X,
		Y: 2*p.cur.Y - p.prevCp.Y,
	}
}

func (p *parser) closePath() {
	p.out = append(p.out, p.start)
	p.cur = p.start
	p.hasPrevCp = false
}

func (p *parser) nextPair() (float64, float64, bool) {
	x, ok := p.nextNumber()
	if !ok {
		return 0, 0, false
	}
	y, ok := p.nextNumber()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

// nextNumber scans one float, stopping at commands. Handles sign,
// decimal point, and exponent; a '-' or '+' mid-stream starts a new number.
func (p *parser) nextNumber() (float64, bool) {
	p.skipSeparators()
	if p.pos >= len(p.d) || isCommand(p.d[p.pos]) {
		return 0, false
	}

	begin := p.pos
	if c := p.d[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	sawDot := false
	sawExp := false
	for p.pos < len(p.d) {
		c := p.d[p.pos]
		switch {
		case c >= '0' && c <= '9':
			p.pos++
		case c == '.' && !sawDot && !sawExp:
			sawDot = true
			p.pos++
		case (c == 'e' || c == 'E') && !sawExp && p.pos > begin:
			sawExp = true
			p.pos++
			if p.pos < len(p.d) && (p.d[p.pos] == '-' || p.d[p.pos] == '+') {
				p.pos++
			}
		default:
			goto done
		}
	}
done:
	tok := p.d[begin:p.pos]
	if tok == "" || tok == "-" || tok == "+" {
		// Malformed token: advance so the scan cannot stall.
		if p.pos == begin {
			p.pos++
		}
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.d) {
		switch p.d[p.pos] {
		case ' ', ',', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'Q', 'q', 'S', 's', 'T', 't', 'Z', 'z', 'A', 'a':
		return true
	}
	return false
}
