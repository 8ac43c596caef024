package geometry

// DistanceFromPointToLine calculates the shortest distance from a point to a line segment
func DistanceFromPointToLine(point, lineStart, lineEnd Vec2) float32 {
	// Vector from line start to end
	lineVec := lineEnd.Subtract(lineStart)
	// Vector from line start to point
	pointVec := point.Subtract(lineStart)

	lineLengthSq := lineVec.Dot(lineVec)
	if lineLengthSq == 0 {
		// Line is just a point
		return pointVec.Magnitude()
	}

	// Project point onto line (clamped to line segment)
	t := pointVec.Dot(lineVec) / lineLengthSq
	t = max(0, min(1, t))

	closest := lineStart.Add(lineVec.Scale(t))
	return point.Subtract(closest).Magnitude()
}
