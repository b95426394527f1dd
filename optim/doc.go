// Copyright 2026 The karpathy-micrograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update parameter leaves from their
// accumulated gradients.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//	for step := 0; step < 100; step++ {
//	    loss := computeLoss(model)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim
