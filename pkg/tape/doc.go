// Package tape derives washi tape colors from artwork images.
//
// # Overview
//
// Every hung artwork gets a strip of decorative tape, and the tape
// color echoes the artwork itself: a small pixel block near the
// image's top-left corner is averaged, then re-saturated into tape
// range so even muted paintings get a vivid strip. Samples that carry
// no usable hue (grayscale scans, near-black or near-white corners)
// draw a random color from [Palette] instead, and artworks whose image
// cannot be fetched or decoded use [Fallback]. Resolution never fails;
// the worst outcome is the default pink.
//
// # Pipeline
//
// [Resolver.Pick] runs the full pipeline:
//
//  1. cached sample lookup ([cache.ColorKey])
//  2. image load: HTTP fetch with retries for http(s) refs, plain file
//     read otherwise
//  3. pixel sampling ([Sample])
//  4. color derivation ([Derive], seeded by the caller's rng)
//
// Steps 1-3 are deterministic per image and cached; step 4 runs fresh
// for every placement so palette picks vary like the other decorative
// attributes.
//
// # Decoding
//
// PNG, JPEG, GIF, and WebP images are supported.
package tape
