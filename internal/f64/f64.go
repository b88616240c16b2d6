package f64

// ScalUnitary is
//  for i := range x {
//  	x[i] *= alpha
//  }
func ScalUnitary(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// AxpyConst is
//  for i := range x {
//  	x[i] = alpha + beta*x[i]
//  }
func AxpyConst(alpha, beta float64, x []float64) {
	for i := range x {
		x[i] = alpha + beta*x[i]
	}
}

// Sum is
//  var sum float64
//  for i := range x {
//      sum += x[i]
//  }
func Sum(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum
}

// Uniform returns a slice of length n where every element is 1/n.
func Uniform(n int) []float64 {
	result := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range result {
		result[i] = p
	}
	return result
}
